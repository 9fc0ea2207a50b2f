package controllers

import (
	"context"
	"io"

	cartsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/cart"
	ordersvc "github.com/mythrilmerch/mythrilmerch-backend/internal/orders"
	productsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/products"
	"github.com/mythrilmerch/mythrilmerch-backend/internal/users"
	authsvc "github.com/mythrilmerch/mythrilmerch-backend/internal/auth"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/logger"
	"github.com/mythrilmerch/mythrilmerch-backend/pkg/pagination"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

type stubProductService struct {
	list    []productsvc.DTO
	product *productsvc.DTO
	err     error
}

func (s *stubProductService) ListProducts(context.Context, pagination.Params) ([]productsvc.DTO, error) {
	return s.list, s.err
}

func (s *stubProductService) GetProduct(context.Context, int64) (*productsvc.DTO, error) {
	return s.product, s.err
}

type stubCartService struct {
	items     []cartsvc.ItemDTO
	item      *cartsvc.ItemDTO
	err       error
	lastOwner models.Owner
	lastQty   int
	lastID    int64
}

func (s *stubCartService) ListCart(_ context.Context, owner models.Owner) ([]cartsvc.ItemDTO, error) {
	s.lastOwner = owner
	return s.items, s.err
}

func (s *stubCartService) AddToCart(_ context.Context, owner models.Owner, productID int64, qty int) (*cartsvc.ItemDTO, error) {
	s.lastOwner, s.lastID, s.lastQty = owner, productID, qty
	return s.item, s.err
}

func (s *stubCartService) UpdateCartItem(_ context.Context, owner models.Owner, itemID int64, qty int) (*cartsvc.ItemDTO, error) {
	s.lastOwner, s.lastID, s.lastQty = owner, itemID, qty
	return s.item, s.err
}

func (s *stubCartService) RemoveCartItem(_ context.Context, owner models.Owner, itemID int64) error {
	s.lastOwner, s.lastID = owner, itemID
	return s.err
}

type stubOrderService struct {
	order     *ordersvc.DTO
	list      []ordersvc.DTO
	err       error
	lastOwner models.Owner
}

func (s *stubOrderService) PlaceOrder(_ context.Context, owner models.Owner) (*ordersvc.DTO, error) {
	s.lastOwner = owner
	return s.order, s.err
}

func (s *stubOrderService) ListOrders(_ context.Context, owner models.Owner) ([]ordersvc.DTO, error) {
	s.lastOwner = owner
	return s.list, s.err
}

func (s *stubOrderService) GetOrder(_ context.Context, owner models.Owner, _ int64) (*ordersvc.DTO, error) {
	s.lastOwner = owner
	return s.order, s.err
}

type stubAuthService struct {
	session *authsvc.Session
	user    *users.DTO
	err     error
	userID  int64
}

func (s *stubAuthService) Register(context.Context, string, string, string) (*authsvc.Session, error) {
	return s.session, s.err
}

func (s *stubAuthService) Login(context.Context, string, string) (*authsvc.Session, error) {
	return s.session, s.err
}

func (s *stubAuthService) GetUser(_ context.Context, userID int64) (*users.DTO, error) {
	s.userID = userID
	return s.user, s.err
}

func (s *stubAuthService) VerifyAccessToken(string) (int64, error) {
	return s.userID, s.err
}
