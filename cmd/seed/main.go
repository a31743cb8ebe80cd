package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ikkim/dinehub-backend/config"
	"github.com/ikkim/dinehub-backend/internal/app/repository"
	"github.com/ikkim/dinehub-backend/internal/app/service"
	"github.com/ikkim/dinehub-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	catalog := service.NewCatalogService(
		repository.NewRestaurantRepository(db.GetDB()),
		repository.NewMenuItemRepository(db.GetDB()),
	)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX:", err)
	}
	entries, skipped, err := readCatalog(f)
	_ = f.Close()
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Restaurants to import: %d (skipped rows: %d)\n", len(entries), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported, failed := 0, 0
	for _, entry := range entries {
		restaurant, err := catalog.CreateRestaurant(entry.restaurant, entry.menu)
		if err != nil {
			failed++
			fmt.Printf("  failed %q: %v\n", *entry.restaurant.Name, err)
			continue
		}
		imported++
		fmt.Printf("  imported %q (id %d, %d menu items)\n", restaurant.Name, restaurant.ID, len(restaurant.MenuItems))
	}

	fmt.Println("Import completed!")
	fmt.Printf("Imported: %d, failed: %d\n", imported, failed)
}
