package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AdminRequestPending  = "pending"
	AdminRequestApproved = "approved"
	AdminRequestRejected = "rejected"
)

// AdminRequest is a pending admin/site signup awaiting super-admin review.
// Approval creates the Site and its admin User in one transaction.
type AdminRequest struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	Name         string         `json:"name" gorm:"not null"`
	SiteName     string         `json:"site_name" gorm:"not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Status       string         `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
