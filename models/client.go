package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client belongs to exactly one company.
type Client struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"not null"`
	Phone        string         `json:"phone" gorm:"not null"`
	Avatar       string         `json:"avatar,omitempty"`
	CompanyID    string         `json:"companyId" gorm:"type:uuid;not null;index"`
	CustomFields JSONMap        `json:"customFields" gorm:"type:jsonb"`
	CreatedByID  string         `json:"createdById,omitempty" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Company   *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedBy *User     `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
	Projects  []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
