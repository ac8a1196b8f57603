package store

import (
	"testing"

	"jewelmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategorySlugValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateCategory(&models.Category{Name: "Rings", Slug: "Rings!"})
	assert.ErrorIs(t, err, ErrInvalidSlug)

	_, err = s.CreateCategory(&models.Category{Name: "Rings", Slug: "rings"})
	require.NoError(t, err)

	_, err = s.CreateCategory(&models.Category{Name: "Rings Again", Slug: "rings"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDeleteCategoryReferentialGuard(t *testing.T) {
	s := newTestStore(t)

	rings := seedCategory(t, s, "Rings", "rings", nil)
	engagement := seedCategory(t, s, "Engagement Rings", "engagement-rings", strPtr(rings.ID))
	product := seedProduct(t, s, "Solitaire", "rings")

	// Blocked: has a child and a referencing product.
	deleted, err := s.DeleteCategory(rings.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	_, err = s.GetCategory(rings.ID)
	require.NoError(t, err, "blocked category must still exist")

	// The leaf deletes cleanly.
	deleted, err = s.DeleteCategory(engagement.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Soft-deleting the product does not unblock the parent: the guard
	// counts inactive products too.
	removed, err := s.DeleteProduct(product.ID)
	require.NoError(t, err)
	require.True(t, removed)

	deleted, err = s.DeleteCategory(rings.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteCategoryMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.DeleteCategory("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCategoriesHierarchy(t *testing.T) {
	s := newTestStore(t)

	rings := seedCategory(t, s, "Rings", "rings", nil)
	necklaces := seedCategory(t, s, "Necklaces", "necklaces", nil)
	engagement := seedCategory(t, s, "Engagement Rings", "engagement-rings", strPtr(rings.ID))
	cocktail := seedCategory(t, s, "Cocktail Rings", "cocktail-rings", strPtr(rings.ID))
	chokers := seedCategory(t, s, "Chokers", "chokers", strPtr(necklaces.ID))

	nodes, err := s.GetCategoriesHierarchy()
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	byID := map[string]CategoryNode{}
	seen := map[string]int{}
	for _, n := range nodes {
		byID[n.ID] = n
		seen[n.ID]++
		for _, child := range n.Children {
			seen[child.ID]++
		}
	}

	// Every category lands in exactly one bucket; none duplicated or lost.
	for _, id := range []string{rings.ID, necklaces.ID, engagement.ID, cocktail.ID, chokers.ID} {
		assert.Equal(t, 1, seen[id])
	}
	assert.Len(t, byID[rings.ID].Children, 2)
	assert.Len(t, byID[necklaces.ID].Children, 1)
}

func TestHierarchyPromotesOrphans(t *testing.T) {
	s := newTestStore(t)

	gone := "deadbeef-0000-0000-0000-000000000000"
	orphan := seedCategory(t, s, "Orphan", "orphan", strPtr(gone))

	nodes, err := s.GetCategoriesHierarchy()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, orphan.ID, nodes[0].ID)
}

func TestReorderCategories(t *testing.T) {
	s := newTestStore(t)

	c1 := seedCategory(t, s, "One", "one", nil)
	c2 := seedCategory(t, s, "Two", "two", nil)
	c3 := seedCategory(t, s, "Three", "three", nil)

	require.NoError(t, s.ReorderCategories([]string{c3.ID, c1.ID, c2.ID}))

	for i, id := range []string{c3.ID, c1.ID, c2.ID} {
		got, err := s.GetCategory(id)
		require.NoError(t, err)
		assert.Equal(t, i, got.DisplayOrder)
	}
}

func TestReorderCategoriesUnknownIDRollsBack(t *testing.T) {
	s := newTestStore(t)

	c1 := seedCategory(t, s, "One", "one", nil)
	c2 := seedCategory(t, s, "Two", "two", nil)
	require.NoError(t, s.ReorderCategories([]string{c1.ID, c2.ID}))

	err := s.ReorderCategories([]string{c2.ID, "no-such-id"})
	assert.ErrorIs(t, err, ErrNotFound)

	// The transaction rolled back; c2 keeps its previous order even though
	// it was touched before the unknown id failed.
	got, err := s.GetCategory(c2.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DisplayOrder)
}

func TestUpdateCategorySlug(t *testing.T) {
	s := newTestStore(t)

	c := seedCategory(t, s, "Rings", "rings", nil)

	_, err := s.UpdateCategory(c.ID, &models.Category{Slug: "Bad Slug"})
	assert.ErrorIs(t, err, ErrInvalidSlug)

	updated, err := s.UpdateCategory(c.ID, &models.Category{Name: "Fine Rings"})
	require.NoError(t, err)
	assert.Equal(t, "Fine Rings", updated.Name)
	assert.Equal(t, "rings", updated.Slug)
}
