package orders

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// LockCartItems reads the owner's cart rows under FOR UPDATE so the checkout
// snapshot cannot move. SQLite rejects the locking syntax and serializes
// writers anyway, so the clause is postgres-only.
func (r *repository) LockCartItems(ctx context.Context, ownerKey string) ([]models.CartItem, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var items []models.CartItem
	if err := tx.Order("id ASC").Find(&items, "owner_key = ?", ownerKey).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ProductsByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	if len(ids) == 0 {
		return map[int64]models.Product{}, nil
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) ClearCart(ctx context.Context, ownerKey string) error {
	return r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Delete(&models.CartItem{}).Error
}

func (r *repository) ListOrders(ctx context.Context, ownerKey string) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id DESC").
		Find(&list, "owner_key = ?", ownerKey).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) FindOrder(ctx context.Context, ownerKey string, orderID int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ? AND owner_key = ?", orderID, ownerKey).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
