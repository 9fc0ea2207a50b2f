package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/enums"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

// Service exposes checkout and order history.
type Service interface {
	PlaceOrder(ctx context.Context, owner models.Owner) (*DTO, error)
	ListOrders(ctx context.Context, owner models.Owner) ([]DTO, error)
	GetOrder(ctx context.Context, owner models.Owner, orderID int64) (*DTO, error)
}

type service struct {
	repo     Repository
	dbClient *db.Client
}

// NewService constructs an orders service instance.
func NewService(repo Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func requireOwner(owner models.Owner) error {
	if !owner.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "order owner required")
	}
	return nil
}

// PlaceOrder turns the owner's cart into an immutable order. The cart read,
// the price snapshot, the order insert and the cart clear all run in one
// transaction; a failure anywhere leaves both cart and orders untouched.
func (s *service) PlaceOrder(ctx context.Context, owner models.Owner) (*DTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	var placed *models.Order
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		cartItems, err := repo.LockCartItems(ctx, owner.Key())
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lock cart")
		}
		if len(cartItems) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		ids := make([]int64, 0, len(cartItems))
		for _, item := range cartItems {
			ids = append(ids, item.ProductID)
		}
		products, err := repo.ProductsByIDs(ctx, ids)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
		}

		total := decimal.Zero
		lines := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			product, ok := products[item.ProductID]
			if !ok {
				// The product vanished while the line sat in the cart;
				// it cannot be priced, so it does not ship.
				continue
			}
			lines = append(lines, models.OrderItem{
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		if len(lines) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		order := &models.Order{
			TotalAmount: total,
			Status:      enums.OrderStatusPending,
			Items:       lines,
		}
		owner.StampOrder(order)

		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		if err := repo.ClearCart(ctx, owner.Key()); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toDTO(placed), nil
}

func (s *service) ListOrders(ctx context.Context, owner models.Owner) ([]DTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	list, err := s.repo.ListOrders(ctx, owner.Key())
	if err != nil {
		return nil, db.Translate(err, "order not found")
	}

	dtos := make([]DTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, *toDTO(&list[i]))
	}
	return dtos, nil
}

func (s *service) GetOrder(ctx context.Context, owner models.Owner, orderID int64) (*DTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	order, err := s.repo.FindOrder(ctx, owner.Key(), orderID)
	if err != nil {
		return nil, db.Translate(err, "order not found")
	}
	return toDTO(order), nil
}
