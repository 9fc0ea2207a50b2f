package cart

import "github.com/shopspring/decimal"

// ItemDTO is one cart line as served to the storefront.
type ItemDTO struct {
	CartItemID  int64           `json:"cartItemId"`
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

func toItemDTO(row Row) ItemDTO {
	return ItemDTO{
		CartItemID:  row.CartItemID,
		ProductID:   row.ProductID,
		Quantity:    row.Quantity,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		ImageURL:    row.ImageURL,
	}
}
