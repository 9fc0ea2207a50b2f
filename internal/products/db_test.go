package product

import (
	"context"
	"testing"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/config"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	"github.com/shopspring/decimal"
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

	if err := client.DB().AutoMigrate(&models.Product{}); err != nil {
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
