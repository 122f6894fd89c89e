package controllers

import (
	"encoding/json"
	"strconv"

	"github.com/Govind-619/OrderDesk/config"
	"github.com/Govind-619/OrderDesk/reports"
	"github.com/Govind-619/OrderDesk/repository"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/gin-gonic/gin"
)

type MenuResponse struct {
	MenuID   uint   `json:"menu_id"`
	MenuName string `json:"menu_name"`
}

type CategoryResponse struct {
	CatID        uint   `json:"cat_id"`
	CategoryName string `json:"category_name"`
	MenuName     string `json:"menu_name"`
}

type VariantResponse struct {
	Size  string      `json:"size"`
	Price json.Number `json:"price"`
}

type MenuItemResponse struct {
	ItemID       uint              `json:"item_id"`
	ItemName     string            `json:"item_name"`
	CategoryName string            `json:"category_name"`
	MenuName     string            `json:"menu_name"`
	Variants     []VariantResponse `json:"variants"`
}

func catalogRepository() *repository.CatalogRepository {
	return repository.NewCatalogRepository(config.DB)
}

// idQuery reads an optional numeric id filter; anything else means no filter
func idQuery(c *gin.Context, key string) uint {
	id, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ListMenus returns every menu
func ListMenus(c *gin.Context) {
	utils.LogInfo("ListMenus called")

	menus, err := catalogRepository().ListMenus(c.Request.Context())
	if err != nil {
		utils.LogError("Failed to fetch menus: %v", err)
		utils.InternalServerError(c, utils.ErrFetchCatalog, err.Error())
		return
	}

	resp := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		resp = append(resp, MenuResponse{MenuID: m.MenuID, MenuName: m.MenuName})
	}
	utils.Success(c, "Menus retrieved successfully", resp)
}

// ListCategories returns categories, optionally for a single menu
func ListCategories(c *gin.Context) {
	menuID := idQuery(c, "menu_id")
	utils.LogInfo("ListCategories called for menu %d", menuID)

	categories, err := catalogRepository().ListCategories(c.Request.Context(), menuID)
	if err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, utils.ErrFetchCatalog, err.Error())
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, CategoryResponse{
			CatID:        cat.CatID,
			CategoryName: cat.CategoryName,
			MenuName:     cat.Menu.MenuName,
		})
	}
	utils.Success(c, "Categories retrieved successfully", resp)
}

// ListMenuItems returns menu items with their size/price variants
func ListMenuItems(c *gin.Context) {
	menuID, categoryID := idQuery(c, "menu_id"), idQuery(c, "category_id")
	utils.LogInfo("ListMenuItems called for menu %d, category %d", menuID, categoryID)

	items, err := catalogRepository().ListMenuItems(c.Request.Context(), menuID, categoryID)
	if err != nil {
		utils.LogError("Failed to fetch menu items: %v", err)
		utils.InternalServerError(c, utils.ErrFetchCatalog, err.Error())
		return
	}

	resp := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		variants := make([]VariantResponse, 0, len(item.Variants))
		for _, v := range item.Variants {
			variants = append(variants, VariantResponse{Size: v.Size, Price: reports.ItemAmount(v.Price)})
		}
		resp = append(resp, MenuItemResponse{
			ItemID:       item.ItemID,
			ItemName:     item.ItemName,
			CategoryName: item.Category.CategoryName,
			MenuName:     item.Menu.MenuName,
			Variants:     variants,
		})
	}
	utils.Success(c, "Menu items retrieved successfully", resp)
}
