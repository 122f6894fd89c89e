package config

import (
	"fmt"
	"time"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedMenuItem struct {
	ID, CategoryID, MenuID uint
	Name                   string
	Sizes                  []string
	Prices                 []string
}

type seedOrderLine struct {
	OrderID uint
	Date    string
	ItemID  uint
	Size    string
	Price   string
	Qty     int
}

type seedPayment struct {
	PaymentID, OrderID uint
	Date               string
	AmountDue          string
	Tips, Discount     string
	TotalPaid          string
	Type, Status       string
}

var seedMenus = []models.Menu{
	{MenuID: 1, MenuName: "Food"},
	{MenuID: 2, MenuName: "Drinks"},
}

var seedCategories = []models.Category{
	{CatID: 1, CategoryName: "Starters", MenuID: 1},
	{CatID: 2, CategoryName: "Soft Drinks", MenuID: 2},
	{CatID: 3, CategoryName: "Mains", MenuID: 1},
	{CatID: 4, CategoryName: "Desserts", MenuID: 2},
	{CatID: 5, CategoryName: "Hot Drinks", MenuID: 2},
}

var seedMenuItems = []seedMenuItem{
	{1, 1, 1, "Item1", []string{"Small", "Large"}, []string{"1.50", "2.50"}},
	{2, 1, 1, "Item2", nil, []string{"3"}},
	{3, 2, 2, "Item3", nil, []string{"2.5"}},
	{4, 2, 2, "Item4", nil, []string{"1.5"}},
	{5, 2, 1, "Item5", nil, []string{"1"}},
	{6, 3, 1, "Item6", []string{"Small", "Large"}, []string{"2.50", "3.6"}},
	{7, 3, 1, "Item7", nil, []string{"2.5"}},
	{8, 4, 2, "Item8", []string{"Small", "Large"}, []string{"3.75", "6.5"}},
	{9, 4, 2, "Item9", nil, []string{"1.5"}},
	{10, 5, 2, "Item10", nil, []string{"2"}},
}

var seedOrderLines = []seedOrderLine{
	{10, "2025-10-01", 2, "", "2.5", 1},
	{10, "2025-10-01", 3, "", "1.5", 2},
	{10, "2025-10-01", 1, "Small", "3.75", 1},

	{11, "2025-10-01", 5, "", "2.75", 1},
	{11, "2025-10-01", 6, "", "1.75", 2},
	{11, "2025-10-01", 2, "", "2.5", 1},
	{11, "2025-10-01", 3, "", "3.5", 1},
	{11, "2025-10-01", 4, "", "3.75", 2},
	{11, "2025-10-01", 5, "", "1.5", 1},

	{12, "2025-10-01", 6, "Large", "5.5", 2},
	{12, "2025-10-01", 7, "", "2.5", 1},
	{12, "2025-10-01", 1, "Large", "3.5", 1},

	{13, "2025-10-01", 1, "Small", "2.75", 2},
	{13, "2025-10-01", 6, "Small", "1.5", 1},
	{13, "2025-10-01", 8, "Small", "3.5", 1},
	{13, "2025-10-01", 1, "Small", "2.5", 2},

	{14, "2025-10-01", 6, "Large", "2.75", 1},
	{14, "2025-10-01", 1, "Large", "2.75655", 2},
	{14, "2025-10-01", 8, "Large", "2.75", 2},
	{14, "2025-10-01", 1, "Large", "2.7556", 2},
	{14, "2025-10-01", 4, "", "5.5", 1},
	{14, "2025-10-01", 3, "", "2.75", 2},
	{14, "2025-10-01", 2, "", "3.5", 1},
	{14, "2025-10-01", 6, "Large", "3.015", 3},

	{15, "2025-10-02", 2, "", "2.568", 2},

	{16, "2025-10-03", 6, "Large", "6.586", 3},

	{17, "2025-10-01", 10, "", "2.5", 1},
	{17, "2025-10-01", 9, "", "2.75636", 1},
	{17, "2025-10-01", 7, "", "5.63982", 1},

	{18, "2025-10-05", 1, "Small", "2.5698", 2},
	{18, "2025-10-05", 6, "Small", "5.36245", 2},
	{18, "2025-10-05", 8, "Small", "5.23569", 2},

	{19, "2025-10-01", 2, "", "2.75698", 1},
	{19, "2025-10-01", 4, "", "2.356", 1},
	{19, "2025-10-01", 5, "", "2.457", 2},
	{19, "2025-10-01", 7, "", "2.6359", 1},
	{19, "2025-10-01", 9, "", "6.523", 1},
	{19, "2025-10-01", 10, "", "8.5412", 3},
	{19, "2025-10-01", 6, "Large", "5.683", 2},
	{19, "2025-10-01", 2, "", "6.3564", 1},
	{19, "2025-10-01", 5, "", "7.235", 1},
	{19, "2025-10-01", 7, "", "2.365", 1},

	{20, "2025-10-01", 1, "Large", "2.3658", 1},
	{20, "2025-10-01", 3, "", "2.356", 1},
	{20, "2025-10-01", 6, "Large", "1.256", 1},
	{20, "2025-10-01", 4, "", "2.635", 1},
	{20, "2025-10-01", 5, "", "5.21", 1},
	{20, "2025-10-01", 7, "", "6.325", 2},
	{20, "2025-10-01", 8, "Small", "7.2514", 1},
	{20, "2025-10-01", 9, "", "2.3999", 1},
	{20, "2025-10-01", 4, "", "2.356", 3},
	{20, "2025-10-01", 6, "Small", "4.5326", 2},
}

var seedPayments = []seedPayment{
	{100, 10, "2025-10-01", "9.25", "0", "0", "9.25", "Card", "Completed"},
	{101, 11, "2025-10-01", "21.25", "0", "0", "10", "Cash", "Completed"},
	{102, 11, "2025-10-01", "21.25", "0", "0", "11.25", "Card", "Completed"},
	{103, 12, "2025-10-02", "17", "3", "4", "16", "Card", "Completed"},
	{104, 13, "2025-10-03", "15.5", "0", "2", "13.5", "Card", "Completed"},
	{105, 14, "2025-10-01", "42.8193", "0", "0", "20", "Cash", "Completed"},
	{106, 14, "2025-10-01", "42.8193", "0", "0", "22.82", "Card", "Completed"},
	{107, 15, "2025-10-02", "5.136", "0", "0", "5.14", "Card", "Refunded"},
	{108, 16, "2025-10-03", "19.758", "0", "0", "10", "Cash", "Completed"},
	{109, 16, "2025-10-03", "19.758", "0", "0", "9.76", "Card", "Completed"},
	{110, 17, "2025-10-01", "10.8918", "0", "0", "10.9", "Card", "Completed"},
	{111, 18, "2025-10-05", "26.33588", "2", "0", "25", "Cash", "Completed"},
	{115, 18, "2025-10-05", "26.33588", "0", "0", "3.34", "Card", "Completed"},
	{116, 19, "2025-10-01", "72.13188", "0", "0", "50", "Cash", "Completed"},
	{119, 19, "2025-10-01", "72.13188", "0", "0", "22.13", "Card", "Completed"},
	{120, 20, "2025-10-01", "52.2573", "0", "0", "25", "Cash", "Completed"},
	{121, 20, "2025-10-01", "52.2573", "0", "0", "27.28", "Card", "Completed"},
}

// ClearData deletes every catalog and order row, children first
func ClearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Payment{},
		&models.OrderItem{},
		&models.Order{},
		&models.MenuItemVariant{},
		&models.MenuItem{},
		&models.Category{},
		&models.Menu{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedSampleData replaces the database contents with the sample restaurant
// dataset. Every row goes through the model validation hooks.
func SeedSampleData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ClearData(tx); err != nil {
			return err
		}

		if err := tx.Create(&seedMenus).Error; err != nil {
			return fmt.Errorf("failed to import menus: %w", err)
		}
		if err := tx.Create(&seedCategories).Error; err != nil {
			return fmt.Errorf("failed to import categories: %w", err)
		}

		for _, s := range seedMenuItems {
			prices, err := parseDecimals(s.Prices)
			if err != nil {
				return fmt.Errorf("menu item %d: %w", s.ID, err)
			}
			variants, err := models.BuildVariants(s.Sizes, prices)
			if err != nil {
				return fmt.Errorf("menu item %d: %w", s.ID, err)
			}
			item := models.MenuItem{
				ItemID:     s.ID,
				ItemName:   s.Name,
				CategoryID: s.CategoryID,
				MenuID:     s.MenuID,
				Variants:   variants,
			}
			if err := tx.Omit("Category", "Menu").Create(&item).Error; err != nil {
				return fmt.Errorf("failed to import menu item %d: %w", s.ID, err)
			}
		}

		orders := make(map[uint]*models.Order)
		var orderIDs []uint
		for _, line := range seedOrderLines {
			order, ok := orders[line.OrderID]
			if !ok {
				date, err := parseDate(line.Date)
				if err != nil {
					return err
				}
				order = &models.Order{
					OrderID:     line.OrderID,
					OrderDate:   date,
					OrderStatus: models.OrderStatusCompleted,
				}
				orders[line.OrderID] = order
				orderIDs = append(orderIDs, line.OrderID)
			}
			price, err := decimal.NewFromString(line.Price)
			if err != nil {
				return fmt.Errorf("order %d: invalid price %q: %w", line.OrderID, line.Price, err)
			}
			order.Items = append(order.Items, models.OrderItem{
				ItemID: line.ItemID,
				Size:   line.Size,
				Price:  price,
				Qty:    line.Qty,
			})
		}
		for _, id := range orderIDs {
			if err := tx.Create(orders[id]).Error; err != nil {
				return fmt.Errorf("failed to import order %d: %w", id, err)
			}
		}

		for _, p := range seedPayments {
			payment, err := p.toModel()
			if err != nil {
				return err
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("failed to import payment %d: %w", p.PaymentID, err)
			}
		}
		return nil
	})
}

func (p seedPayment) toModel() (models.Payment, error) {
	date, err := parseDate(p.Date)
	if err != nil {
		return models.Payment{}, err
	}
	amounts, err := parseDecimals([]string{p.AmountDue, p.Tips, p.Discount, p.TotalPaid})
	if err != nil {
		return models.Payment{}, fmt.Errorf("payment %d: %w", p.PaymentID, err)
	}
	return models.Payment{
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		PaymentDate:   date,
		AmountDue:     amounts[0],
		Tips:          amounts[1],
		Discount:      amounts[2],
		TotalPaid:     amounts[3],
		PaymentType:   p.Type,
		PaymentStatus: p.Status,
	}, nil
}

func parseDecimals(values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return datatypes.Date(t), nil
}
