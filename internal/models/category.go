package models

// Category groups products for display and filtering.
type Category struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Status string `gorm:"size:50;not null" json:"status"`
}

func (Category) TableName() string {
	return "categories"
}
