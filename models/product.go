package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint    `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	UserID       uint    `gorm:"column:user_id;not null" json:"user_id"` // owning seller
	CategoryID   uint    `gorm:"column:category_id" json:"category_id"`
	Name         string  `gorm:"column:product_name;not null" json:"product_name"`
	Price        float64 `gorm:"column:product_price;not null" json:"product_price"`
	MRP          float64 `gorm:"column:product_mrp" json:"product_mrp"`
	Quantity     int     `gorm:"column:product_quantity" json:"product_quantity"`
	AvgRating    float64 `gorm:"column:product_avg_rating" json:"product_avg_rating"`
	ReviewsCount int     `gorm:"column:product_reviews_count" json:"product_reviews_count"`
	Brand        string  `gorm:"column:brand" json:"brand"`
	Description  string  `gorm:"column:description" json:"description"`
	ImageURL     string  `gorm:"column:image_url" json:"image_url"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"unique;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
