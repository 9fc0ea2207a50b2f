package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
	pkgerrors "github.com/mythrilmerch/mythrilmerch-backend/pkg/errors"
)

func TestAddToCartCreatesLine(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	item, err := svc.AddToCart(context.Background(), owner, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Mythril Tee", item.Name)
	assert.Equal(t, "29.99", item.Price.StringFixed(2))
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	_, err := svc.AddToCart(context.Background(), owner, product.ID, 2)
	require.NoError(t, err)
	item, err := svc.AddToCart(context.Background(), owner, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	items, err := svc.ListCart(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1, "repeated adds must stay a single line")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddToCart(context.Background(), models.SessionOwner("sess-1"), 999, 1)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")

	for _, qty := range []int{0, -1} {
		_, err := svc.AddToCart(context.Background(), models.SessionOwner("sess-1"), product.ID, qty)
		require.Error(t, err, "quantity %d", qty)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
}

func TestConcurrentAddsLoseNoIncrements(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddToCart(context.Background(), owner, product.ID, 1)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	items, err := svc.ListCart(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestListCartIsolatesOwners(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")

	userOwner := models.UserOwner(7)
	sessionOwner := models.SessionOwner("sess-1")

	_, err := svc.AddToCart(context.Background(), userOwner, product.ID, 1)
	require.NoError(t, err)

	items, err := svc.ListCart(context.Background(), sessionOwner)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.ListCart(context.Background(), userOwner)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListCartExcludesDanglingProducts(t *testing.T) {
	svc, client := newTestService(t)
	keep := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	gone := mustCreateTestProduct(t, client, "Limited Pin", "8.99")
	owner := models.SessionOwner("sess-1")

	_, err := svc.AddToCart(context.Background(), owner, keep.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), owner, gone.ID, 1)
	require.NoError(t, err)

	// Drop the FK pragma so the cascade leaves the cart row dangling.
	require.NoError(t, client.DB().Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, client.DB().Delete(&models.Product{}, gone.ID).Error)

	items, err := svc.ListCart(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ProductID)
}

func TestUpdateCartItemSetsQuantity(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	added, err := svc.AddToCart(context.Background(), owner, product.ID, 1)
	require.NoError(t, err)

	updated, err := svc.UpdateCartItem(context.Background(), owner, added.CartItemID, 4)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 4, updated.Quantity)
}

func TestUpdateCartItemNonPositiveQuantityRemoves(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	added, err := svc.AddToCart(context.Background(), owner, product.ID, 2)
	require.NoError(t, err)

	updated, err := svc.UpdateCartItem(context.Background(), owner, added.CartItemID, 0)
	require.NoError(t, err)
	assert.Nil(t, updated)

	items, err := svc.ListCart(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateCartItemMissingLine(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateCartItem(context.Background(), models.SessionOwner("sess-1"), 999, 3)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRemoveCartItemTwiceReportsNotFound(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")
	owner := models.SessionOwner("sess-1")

	added, err := svc.AddToCart(context.Background(), owner, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveCartItem(context.Background(), owner, added.CartItemID))

	err = svc.RemoveCartItem(context.Background(), owner, added.CartItemID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestRemoveCartItemOtherOwnersLine(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateTestProduct(t, client, "Mythril Tee", "29.99")

	added, err := svc.AddToCart(context.Background(), models.UserOwner(7), product.ID, 1)
	require.NoError(t, err)

	err = svc.RemoveCartItem(context.Background(), models.SessionOwner("sess-1"), added.CartItemID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceRequiresOwner(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListCart(context.Background(), models.Owner{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
