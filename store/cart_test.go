package store

import (
	"testing"

	"jewelmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartOwnerClause(t *testing.T) {
	s := newTestStore(t)

	// Neither owner set.
	_, err := s.GetCartItems(nil, nil)
	assert.ErrorIs(t, err, ErrCartOwner)

	// Both set.
	_, err = s.GetCartItems(strPtr("sess-1"), strPtr("user-1"))
	assert.ErrorIs(t, err, ErrCartOwner)
}

func TestAddCartItemIncrementsExisting(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Gold Ring", "rings")
	sess := strPtr("sess-1")

	first, err := s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	second, err := s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same product folds into one row")
	assert.Equal(t, 3, second.Quantity)

	items, err := s.GetCartItems(sess, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddCartItemRejectsDeadProduct(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Gold Ring", "rings")
	_, err := s.DeleteProduct(p.ID)
	require.NoError(t, err)

	_, err = s.AddCartItem(&models.CartItem{SessionID: strPtr("sess-1"), ProductID: p.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddCartItem(&models.CartItem{SessionID: strPtr("sess-1"), ProductID: "ghost", Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCartItemQuantity(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Gold Ring", "rings")
	_, err := s.AddCartItem(&models.CartItem{SessionID: strPtr("sess-1"), ProductID: p.ID, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestGetCartItemsDropsSoftDeletedProducts(t *testing.T) {
	s := newTestStore(t)

	sess := strPtr("sess-1")
	live := seedProduct(t, s, "Gold Ring", "rings")
	dying := seedProduct(t, s, "Old Pendant", "pendants")

	_, err := s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: live.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: dying.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = s.DeleteProduct(dying.ID)
	require.NoError(t, err)

	items, err := s.GetCartItems(sess, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, live.ID, items[0].ProductID)
	assert.Equal(t, live.Name, items[0].Product.Name)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	s := newTestStore(t)

	p := seedProduct(t, s, "Gold Ring", "rings")
	item, err := s.AddCartItem(&models.CartItem{SessionID: strPtr("sess-1"), ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	updated, err := s.UpdateCartItemQuantity(item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = s.UpdateCartItemQuantity(item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = s.UpdateCartItemQuantity("no-such-id", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveAndClearCart(t *testing.T) {
	s := newTestStore(t)

	sess := strPtr("sess-1")
	p1 := seedProduct(t, s, "Gold Ring", "rings")
	p2 := seedProduct(t, s, "Silver Chain", "chains")

	item, err := s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: p2.ID, Quantity: 1})
	require.NoError(t, err)

	removed, err := s.RemoveCartItem(item.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveCartItem(item.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, s.ClearCart(sess, nil))
	items, err := s.GetCartItems(sess, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMergeGuestCart(t *testing.T) {
	s := newTestStore(t)

	shared := seedProduct(t, s, "Gold Ring", "rings")
	guestOnly := seedProduct(t, s, "Silver Chain", "chains")
	sess := strPtr("sess-1")
	user := strPtr("user-1")

	// User already has the shared product; guest has both.
	_, err := s.AddCartItem(&models.CartItem{UserID: user, ProductID: shared.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: shared.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = s.AddCartItem(&models.CartItem{SessionID: sess, ProductID: guestOnly.ID, Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, s.MergeGuestCart(*sess, *user))

	guestItems, err := s.GetCartItems(sess, nil)
	require.NoError(t, err)
	assert.Empty(t, guestItems, "guest cart is emptied by the merge")

	userItems, err := s.GetCartItems(nil, user)
	require.NoError(t, err)
	require.Len(t, userItems, 2)

	byProduct := map[string]int{}
	for _, it := range userItems {
		byProduct[it.ProductID] = it.Quantity
	}
	assert.Equal(t, 3, byProduct[shared.ID], "quantities fold together")
	assert.Equal(t, 3, byProduct[guestOnly.ID])
}
