package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MinPrice is the smallest price accepted for a menu variant or an order line
var MinPrice = decimal.RequireFromString("0.01")

var (
	ErrVariantMismatch = errors.New("sizes and prices must have the same length")
	ErrNoPrice         = errors.New("menu item needs at least one price")
	ErrPriceTooLow     = errors.New("price must be at least 0.01")
)

// MenuItem is a sellable item; it carries one or more size/price variants
type MenuItem struct {
	ItemID     uint              `json:"item_id" gorm:"primaryKey;autoIncrement:false"`
	ItemName   string            `json:"item_name" gorm:"size:200;not null"`
	CategoryID uint              `json:"category_id" gorm:"column:cat_id;not null;index"`
	Category   Category          `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:CatID"`
	MenuID     uint              `json:"menu_id" gorm:"not null;index"`
	Menu       Menu              `json:"menu,omitempty" gorm:"foreignKey:MenuID;references:MenuID"`
	Variants   []MenuItemVariant `json:"variants" gorm:"foreignKey:ItemID;references:ItemID"`
}

func (MenuItem) TableName() string {
	return "menu_item"
}

// MenuItemVariant is one (size, price) pair. Size is empty for the single
// default price of an unsized item.
type MenuItemVariant struct {
	ID       uint            `json:"-" gorm:"primaryKey"`
	ItemID   uint            `json:"-" gorm:"not null;index"`
	Position int             `json:"-" gorm:"not null"`
	Size     string          `json:"size" gorm:"size:50"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,5);not null"`
}

func (MenuItemVariant) TableName() string {
	return "menu_item_variants"
}

// BeforeSave rejects prices below the minimum
func (v *MenuItemVariant) BeforeSave(tx *gorm.DB) error {
	if v.Price.LessThan(MinPrice) {
		return fmt.Errorf("variant %q: %w", v.Size, ErrPriceTooLow)
	}
	v.Size = strings.TrimSpace(v.Size)
	return nil
}

// BuildVariants pairs sizes with prices by position. With no sizes exactly
// one price is expected and becomes the default price.
func BuildVariants(sizes []string, prices []decimal.Decimal) ([]MenuItemVariant, error) {
	if len(prices) == 0 {
		return nil, ErrNoPrice
	}
	if len(sizes) == 0 {
		if len(prices) != 1 {
			return nil, ErrVariantMismatch
		}
		if prices[0].LessThan(MinPrice) {
			return nil, ErrPriceTooLow
		}
		return []MenuItemVariant{{Position: 0, Price: prices[0]}}, nil
	}
	if len(sizes) != len(prices) {
		return nil, ErrVariantMismatch
	}

	variants := make([]MenuItemVariant, 0, len(sizes))
	for i, size := range sizes {
		if prices[i].LessThan(MinPrice) {
			return nil, ErrPriceTooLow
		}
		variants = append(variants, MenuItemVariant{
			Position: i,
			Size:     strings.TrimSpace(size),
			Price:    prices[i],
		})
	}
	return variants, nil
}

// PriceForSize returns the price of the variant matching size. An empty
// size, an unknown size or an unsized item falls back to the first price.
func (m MenuItem) PriceForSize(size string) (decimal.Decimal, bool) {
	if len(m.Variants) == 0 {
		return decimal.Zero, false
	}
	first := m.Variants[0]
	for _, v := range m.Variants[1:] {
		if v.Position < first.Position {
			first = v
		}
	}

	size = strings.TrimSpace(size)
	if size == "" {
		return first.Price, true
	}
	for _, v := range m.Variants {
		if v.Size != "" && v.Size == size {
			return v.Price, true
		}
	}
	return first.Price, true
}
