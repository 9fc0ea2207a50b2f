package product

import (
	"context"
	"fmt"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/pagination"
)

// Service exposes catalog read operations.
type Service interface {
	ListProducts(ctx context.Context, page pagination.Params) ([]DTO, error)
	GetProduct(ctx context.Context, id int64) (*DTO, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

func (s *service) ListProducts(ctx context.Context, page pagination.Params) ([]DTO, error) {
	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	products, err := s.repo.ListProducts(ctx, page)
	if err != nil {
		return nil, db.Translate(err, "product not found")
	}

	dtos := make([]DTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, *toDTO(&products[i]))
	}
	return dtos, nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*DTO, error) {
	ctx, cancel := s.dbClient.OpContext(ctx)
	defer cancel()

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Translate(err, "product not found")
	}
	return toDTO(product), nil
}
