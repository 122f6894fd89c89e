package models

import (
	"strings"

	"gorm.io/gorm"
)

// Menu is a top level restaurant menu (Food, Drinks)
type Menu struct {
	MenuID     uint       `json:"menu_id" gorm:"primaryKey;autoIncrement:false"`
	MenuName   string     `json:"menu_name" gorm:"size:100;not null"`
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:MenuID;references:MenuID"`
}

func (Menu) TableName() string {
	return "menu"
}

// BeforeSave hook to standardize menu names
func (m *Menu) BeforeSave(tx *gorm.DB) error {
	m.MenuName = strings.TrimSpace(m.MenuName)
	return nil
}

// Category groups menu items inside a menu (Starters, Mains, ...)
type Category struct {
	CatID        uint   `json:"cat_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryName string `json:"category_name" gorm:"size:100;not null"`
	MenuID       uint   `json:"menu_id" gorm:"not null;index"`
	Menu         Menu   `json:"menu,omitempty" gorm:"foreignKey:MenuID;references:MenuID"`
}

func (Category) TableName() string {
	return "category"
}

// BeforeSave hook to ensure name is always in proper format
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.CategoryName = strings.TrimSpace(c.CategoryName)
	return nil
}
