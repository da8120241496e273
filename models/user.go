package models

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
	RoleBuyer  Role = "BUYER"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Phone        string    `json:"phone"`
	Role         Role      `gorm:"type:VARCHAR(10);not null" json:"role"`
	LocationID   *uint     `json:"location_id"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Cart         Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt    time.Time `json:"created_at"`
}

// Location is a reusable delivery region referenced by users.
type Location struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}
