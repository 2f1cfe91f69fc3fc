package users

import "time"

// User is an editor/admin account for the admin API. There is no public
// signup; accounts are provisioned directly.
type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
