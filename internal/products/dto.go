package product

import (
	"github.com/shopspring/decimal"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

// DTO is the catalog entry shape served to the storefront.
type DTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

func toDTO(p *models.Product) *DTO {
	return &DTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}
