package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/pagination"
)

// Repository wraps catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListProducts returns the catalog in insertion order. A zero page lists
// every product.
func (r *Repository) ListProducts(ctx context.Context, page pagination.Params) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
