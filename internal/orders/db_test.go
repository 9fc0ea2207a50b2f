package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	cartsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/cart"
	productsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/products"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *db.Client {
	t.Helper()

	// A single pooled connection keeps the in-memory database alive for the
	// whole test.
	client, err := db.New(context.Background(), config.DBConfig{
		UseSQLite:    true,
		SQLitePath:   "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	err = client.DB().AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func mustCreateTestProduct(t *testing.T, client *db.Client, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: "test listing",
		Price:       decimal.RequireFromString(price),
		ImageURL:    "/images/" + name + ".png",
	}
	if err := client.DB().Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func mustAddToCart(t *testing.T, client *db.Client, owner models.Owner, productID int64, qty int) {
	t.Helper()
	svc, err := cartsvc.NewService(
		cartsvc.NewRepository(client.DB()),
		productsvc.NewRepository(client.DB()),
		client,
	)
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	if _, err := svc.AddToCart(context.Background(), owner, productID, qty); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
}

func cartLineCount(t *testing.T, client *db.Client, owner models.Owner) int64 {
	t.Helper()
	var count int64
	if err := client.DB().Model(&models.CartItem{}).Where("owner_key = ?", owner.Key()).Count(&count).Error; err != nil {
		t.Fatalf("count cart items: %v", err)
	}
	return count
}
