package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

// ItemDTO is one immutable order line.
type ItemDTO struct {
	ProductID       int64           `json:"productId"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

// DTO is the order shape served to the storefront.
type DTO struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []ItemDTO       `json:"items"`
}

func toDTO(order *models.Order) *DTO {
	items := make([]ItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, ItemDTO{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}
	return &DTO{
		ID:          order.ID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}
