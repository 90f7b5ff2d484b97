package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus is the closed set of project states.
type ProjectStatus string

const (
	ProjectPending   ProjectStatus = "pending"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPending, ProjectActive, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project belongs to exactly one client, and transitively one company.
type Project struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string         `json:"name" gorm:"not null"`
	Status       ProjectStatus  `json:"status" gorm:"type:varchar(10);default:'pending'"`
	Images       StringSlice    `json:"images" gorm:"type:jsonb"`
	ClientID     string         `json:"clientId" gorm:"type:uuid;not null;index"`
	CustomFields JSONMap        `json:"customFields" gorm:"type:jsonb"`
	CreatedByID  string         `json:"createdById,omitempty" gorm:"type:uuid;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client    *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CreatedBy *User   `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
