package repository

import (
	"context"

	"github.com/Govind-619/OrderDesk/models"
	"github.com/Govind-619/OrderDesk/utils"
	"gorm.io/gorm"
)

// CatalogRepository reads menus, categories and menu items
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a catalog repository over db
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListMenus returns all menus ordered by id
func (r *CatalogRepository) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.WithContext(ctx).Order("menu_id").Find(&menus).Error; err != nil {
		return nil, utils.WrapError(err, "failed to fetch menus")
	}
	return menus, nil
}

// ListCategories returns categories, optionally limited to one menu
func (r *CatalogRepository) ListCategories(ctx context.Context, menuID uint) ([]models.Category, error) {
	q := r.db.WithContext(ctx).Preload("Menu").Order("cat_id")
	if menuID != 0 {
		q = q.Where("menu_id = ?", menuID)
	}

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, utils.WrapError(err, "failed to fetch categories")
	}
	return categories, nil
}

// ListMenuItems returns menu items with their variants in position order.
// A zero menuID or categoryID does not filter.
func (r *CatalogRepository) ListMenuItems(ctx context.Context, menuID, categoryID uint) ([]models.MenuItem, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Menu").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("item_id")
	if menuID != 0 {
		q = q.Where("menu_item.menu_id = ?", menuID)
	}
	if categoryID != 0 {
		q = q.Where("menu_item.cat_id = ?", categoryID)
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, utils.WrapError(err, "failed to fetch menu items")
	}
	return items, nil
}
