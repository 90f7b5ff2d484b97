package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the root of the business hierarchy. Clients reference a company,
// projects reference a client.
type Company struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string         `json:"name" gorm:"not null"`
	Logo         string         `json:"logo,omitempty"`
	CustomFields JSONMap        `json:"customFields" gorm:"type:jsonb"`
	CreatedByID  string         `json:"createdById,omitempty" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	CreatedBy *User    `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	Clients   []Client `json:"clients,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
