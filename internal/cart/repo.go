package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

// Row is a cart line joined with its product. Lines whose product vanished
// are excluded by the inner join; the FK cascade removes them for real.
type Row struct {
	CartItemID  int64           `gorm:"column:cart_item_id"`
	ProductID   int64           `gorm:"column:product_id"`
	Quantity    int             `gorm:"column:quantity"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price"`
	ImageURL    string          `gorm:"column:image_url"`
}

// Repository wraps cart persistence.
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

// ListRows returns the owner's cart joined with product data, oldest line
// first.
func (r *Repository) ListRows(ctx context.Context, ownerKey string) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS cart_item_id, cart_items.product_id, cart_items.quantity, products.name, products.description, products.price, products.image_url").
		Joins("INNER JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.owner_key = ?", ownerKey).
		Order("cart_items.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertAdd inserts the line or accumulates quantity into the existing one.
// The single statement keeps concurrent adds from losing increments.
func (r *Repository) UpsertAdd(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_key"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("quantity + excluded.quantity"),
			}),
		}).
		Create(item).Error
}

// FindItem loads one of the owner's cart lines by cart item id.
func (r *Repository) FindItem(ctx context.Context, ownerKey string, itemID int64) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		First(&item, "id = ? AND owner_key = ?", itemID, ownerKey).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetQuantity updates a line's quantity. Returns the number of rows touched
// so callers can distinguish a missing line.
func (r *Repository) SetQuantity(ctx context.Context, ownerKey string, itemID int64, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ? AND owner_key = ?", itemID, ownerKey).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// DeleteItem removes a line. Returns the number of rows deleted.
func (r *Repository) DeleteItem(ctx context.Context, ownerKey string, itemID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_key = ?", itemID, ownerKey).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// LockItems loads the owner's cart rows with FOR UPDATE so checkout reads a
// stable snapshot. SQLite serializes writers on its own and rejects the
// locking syntax, so the clause is postgres-only.
func (r *Repository) LockItems(ctx context.Context, ownerKey string) ([]models.CartItem, error) {
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

// ClearOwner deletes every cart line the owner has.
func (r *Repository) ClearOwner(ctx context.Context, ownerKey string) error {
	return r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Delete(&models.CartItem{}).Error
}

// FindRowByProduct loads the owner's joined line for one product.
func (r *Repository) FindRowByProduct(ctx context.Context, ownerKey string, productID int64) (*Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id AS cart_item_id, cart_items.product_id, cart_items.quantity, products.name, products.description, products.price, products.image_url").
		Joins("INNER JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.owner_key = ? AND cart_items.product_id = ?", ownerKey, productID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
