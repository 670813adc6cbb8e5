package main

import (
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
)

// Seed creates the admin user (from ADMIN_EMAIL / ADMIN_PASSWORD) and a
// starter catalog. Admin status is only ever granted here or by direct
// data administration; the API has no promotion endpoint.
func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := seedAdmin(gormDB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	} else {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
	}

	count, err := seedProducts(gormDB)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Seed complete: %d products created", count)
}

func seedAdmin(gormDB *gorm.DB, email, password string) error {
	var existing model.User
	err := gormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Printf("Admin user %s already exists", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Created admin user %s", email)
	return nil
}

func seedProducts(gormDB *gorm.DB) (int, error) {
	products := []model.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear wireless headphones with active noise cancelling.",
			Price:       decimal.NewFromFloat(129.99),
			Category:    model.CategoryElectronics,
			Image:       model.DefaultProductImage,
			Stock:       25,
		},
		{
			Name:        "Cotton T-Shirt",
			Description: "Plain crew-neck t-shirt, 100% cotton.",
			Price:       decimal.NewFromFloat(14.50),
			Category:    model.CategoryClothing,
			Image:       model.DefaultProductImage,
			Stock:       120,
		},
		{
			Name:        "The Go Programming Language",
			Description: "Donovan and Kernighan's reference on Go.",
			Price:       decimal.NewFromFloat(39.95),
			Category:    model.CategoryBooks,
			Image:       model.DefaultProductImage,
			Stock:       40,
		},
		{
			Name:        "Ceramic Mug Set",
			Description: "Set of four 350ml stoneware mugs.",
			Price:       decimal.NewFromFloat(24.00),
			Category:    model.CategoryHome,
			Image:       model.DefaultProductImage,
			Stock:       60,
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip 6mm exercise mat with carry strap.",
			Price:       decimal.NewFromFloat(19.99),
			Category:    model.CategorySports,
			Image:       model.DefaultProductImage,
			Stock:       80,
		},
	}

	created := 0
	for i := range products {
		var existing model.Product
		err := gormDB.Where("name = ?", products[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := gormDB.Create(&products[i]).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
