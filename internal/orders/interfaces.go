package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

// Repository defines persistence operations for checkout and order reads.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	LockCartItems(ctx context.Context, ownerKey string) ([]models.CartItem, error)
	ProductsByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	ClearCart(ctx context.Context, ownerKey string) error
	ListOrders(ctx context.Context, ownerKey string) ([]models.Order, error)
	FindOrder(ctx context.Context, ownerKey string, orderID int64) (*models.Order, error)
}
