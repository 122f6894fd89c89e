package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Govind-619/OrderDesk/config"
	"github.com/Govind-619/OrderDesk/reports"
	"github.com/Govind-619/OrderDesk/repository"
	"github.com/Govind-619/OrderDesk/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	sqlitePath := flag.String("sqlite", "", "import into this sqlite file instead of postgres")
	clearOnly := flag.Bool("clear", false, "delete all data without importing")
	flag.Parse()

	db, err := openDB(*sqlitePath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer config.Close(db)

	if *clearOnly {
		fmt.Println("Clearing existing data...")
		if err := config.ClearData(db); err != nil {
			log.Fatal("Failed to clear data:", err)
		}
		fmt.Println("Done.")
		return
	}

	fmt.Println("Starting data import...")
	if err := config.SeedSampleData(db); err != nil {
		log.Fatal("Import failed:", err)
	}
	fmt.Println("Data import completed successfully!")

	if err := printSummary(db); err != nil {
		log.Fatal("Failed to summarize orders:", err)
	}
}

func openDB(sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
		if err != nil {
			return nil, err
		}
		return db, config.Migrate(db)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := utils.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
	}
	if err := config.InitDB(cfg); err != nil {
		return nil, err
	}
	return config.DB, nil
}

func printSummary(db *gorm.DB) error {
	orders, err := repository.NewOrderRepository(db).FindAll(context.Background(), repository.OrderFilter{})
	if err != nil {
		return err
	}

	fmt.Println("\nOrder Summary:")
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	items, payments := 0, 0
	for i := range orders {
		agg := reports.Summarize(orders[i])
		items += agg.ItemCount
		payments += agg.PaymentCount
		fmt.Printf("  Order %d: Total=%s, Paid=%s, Balance=%s\n",
			orders[i].OrderID,
			agg.TotalAmount.StringFixed(reports.AmountPlaces),
			agg.TotalPaid.StringFixed(reports.AmountPlaces),
			agg.PaymentBalance.StringFixed(reports.AmountPlaces))
	}
	fmt.Printf("\nImported %d orders, %d order items, %d payments\n", len(orders), items, payments)
	return nil
}
