package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoImage is the picture value for products without an uploaded image.
// It is a plain marker, never an actual file in the upload directory,
// so it must never be passed to a file delete.
const NoImage = "noimg.jpg"

// Product represents a stocked product. Picture is always a non-empty
// filename; NoImage stands in when nothing was uploaded.
type Product struct {
	ID           int             `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unitprice"`
	UnitInStock  int             `gorm:"not null" json:"unitinstock"`
	Picture      string          `gorm:"size:255;not null" json:"picture"`
	CategoryID   int             `gorm:"not null;index" json:"categoryid"`
	CreatedDate  time.Time       `json:"createddate"`
	ModifiedDate time.Time       `json:"modifieddate"`
}

func (Product) TableName() string {
	return "products"
}

// ProductWithCategory is a product row joined to its category's display name.
type ProductWithCategory struct {
	Product      `gorm:"embedded"`
	CategoryName string `gorm:"column:category_name" json:"categoryname"`
}
