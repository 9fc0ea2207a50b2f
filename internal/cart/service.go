package cart

import (
	"context"
	"fmt"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

// Service exposes cart operations scoped to a single owner.
type Service interface {
	ListCart(ctx context.Context, owner models.Owner) ([]ItemDTO, error)
	AddToCart(ctx context.Context, owner models.Owner, productID int64, quantity int) (*ItemDTO, error)
	UpdateCartItem(ctx context.Context, owner models.Owner, itemID int64, quantity int) (*ItemDTO, error)
	RemoveCartItem(ctx context.Context, owner models.Owner, itemID int64) error
}

type productLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

type service struct {
	repo     *Repository
	products productLoader
	dbClient *db.Client
}

// NewService constructs a cart service instance.
func NewService(repo *Repository, products productLoader, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, products: products, dbClient: dbClient}, nil
}

func requireOwner(owner models.Owner) error {
	if !owner.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart owner required")
	}
	return nil
}

func (s *service) ListCart(ctx context.Context, owner models.Owner) ([]ItemDTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	rows, err := s.repo.ListRows(ctx, owner.Key())
	if err != nil {
		return nil, db.Translate(err, "cart not found")
	}

	items := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItemDTO(row))
	}
	return items, nil
}

// AddToCart accumulates quantity into the owner's line for the product. The
// write is a single upsert, so concurrent adds for the same product all land.
func (s *service) AddToCart(ctx context.Context, owner models.Owner, productID int64, quantity int) (*ItemDTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, db.Translate(err, "product not found")
	}

	item := &models.CartItem{ProductID: productID, Quantity: quantity}
	owner.Stamp(item)

	if err := s.repo.UpsertAdd(ctx, item); err != nil {
		// The product can vanish between the existence check and the
		// insert; the FK failure is the authoritative answer.
		if db.IsForeignKeyViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, db.Translate(err, "product not found")
	}

	row, err := s.repo.FindRowByProduct(ctx, owner.Key(), productID)
	if err != nil {
		return nil, db.Translate(err, "cart item not found")
	}
	dto := toItemDTO(*row)
	return &dto, nil
}

// UpdateCartItem sets the line's quantity. A non-positive quantity removes
// the line and returns nil.
func (s *service) UpdateCartItem(ctx context.Context, owner models.Owner, itemID int64, quantity int) (*ItemDTO, error) {
	if err := requireOwner(owner); err != nil {
		return nil, err
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	if quantity <= 0 {
		return nil, s.removeItem(ctx, owner, itemID)
	}

	affected, err := s.repo.SetQuantity(ctx, owner.Key(), itemID, quantity)
	if err != nil {
		return nil, db.Translate(err, "cart item not found")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	item, err := s.repo.FindItem(ctx, owner.Key(), itemID)
	if err != nil {
		return nil, db.Translate(err, "cart item not found")
	}
	row, err := s.repo.FindRowByProduct(ctx, owner.Key(), item.ProductID)
	if err != nil {
		return nil, db.Translate(err, "cart item not found")
	}
	dto := toItemDTO(*row)
	return &dto, nil
}

func (s *service) RemoveCartItem(ctx context.Context, owner models.Owner, itemID int64) error {
	if err := requireOwner(owner); err != nil {
		return err
	}

	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	return s.removeItem(ctx, owner, itemID)
}

func (s *service) removeItem(ctx context.Context, owner models.Owner, itemID int64) error {
	affected, err := s.repo.DeleteItem(ctx, owner.Key(), itemID)
	if err != nil {
		return db.Translate(err, "cart item not found")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}
