// Package model holds the GORM persistence models.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The login is the primary key, so the
// database enforces login uniqueness.
type AccountModel struct {
	Login        string `gorm:"type:varchar(255);primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(16);not null;default:USER"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
