package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	productsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/products"
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

	if err := client.DB().AutoMigrate(&models.Product{}, &models.User{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()
	client := openTestDB(t)
	svc, err := NewService(NewRepository(client.DB()), productsvc.NewRepository(client.DB()), client)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, client
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
