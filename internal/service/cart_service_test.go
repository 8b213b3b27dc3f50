package service

import (
	"testing"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddAndTotal(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	total, err := cart.Add(sess, catalog.CategoryDryCleaning, "office_shirt", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "11.00", total.StringFixed(2))

	total, err = cart.Add(sess, catalog.CategoryDryCleaning, catalog.ItemWeddingDress, 1, []string{catalog.OptionBoxed})
	require.NoError(t, err)
	assert.Equal(t, "191.00", total.StringFixed(2))

	summary := cart.Summary(sess)
	assert.Equal(t, 2, summary.LineCount)
	assert.Equal(t, 3, summary.TotalQuantity)
	assert.Equal(t, "191.00", summary.Total.StringFixed(2))
}

func TestCartAddUnknownKeys(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, "alterations", "hem", 1, nil)
	assert.ErrorIs(t, err, apperror.ErrCategoryNotFound)

	_, err = cart.Add(sess, catalog.CategoryDryCleaning, "spacesuit", 1, nil)
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)

	assert.Empty(t, sess.Cart)
}

func TestCartAddMergesIdenticalLines(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, catalog.CategoryDryCleaning, "pants", 1, []string{"Crease"})
	require.NoError(t, err)
	_, err = cart.Add(sess, catalog.CategoryDryCleaning, "pants", 2, []string{"Crease"})
	require.NoError(t, err)

	require.Len(t, sess.Cart, 1)
	assert.Equal(t, 3, sess.Cart[0].Quantity)

	// Different options stay a separate line.
	_, err = cart.Add(sess, catalog.CategoryDryCleaning, "pants", 1, []string{"No crease"})
	require.NoError(t, err)
	assert.Len(t, sess.Cart, 2)
}

func TestCartLineIdsAreMonotonic(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, catalog.CategoryDryCleaning, "office_shirt", 1, nil)
	require.NoError(t, err)
	_, err = cart.Add(sess, catalog.CategoryDryCleaning, "pants", 1, nil)
	require.NoError(t, err)

	firstId := sess.Cart[0].ID
	secondId := sess.Cart[1].ID
	assert.Greater(t, secondId, firstId)

	_, err = cart.Remove(sess, firstId)
	require.NoError(t, err)

	// A fresh line never reuses a removed id.
	_, err = cart.Add(sess, catalog.CategoryDryCleaning, "blouse", 1, nil)
	require.NoError(t, err)
	assert.Greater(t, sess.Cart[1].ID, secondId)
}

func TestCartRemoveUnknownLine(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Remove(sess, 99)
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)
}

func TestCartUpdateQuantityFloor(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, catalog.CategoryDryCleaning, "office_shirt", 2, nil)
	require.NoError(t, err)
	lineId := sess.Cart[0].ID

	// Zero behaves exactly like remove.
	total, err := cart.UpdateQuantity(sess, lineId, 0)
	require.NoError(t, err)
	assert.Empty(t, sess.Cart)
	assert.Equal(t, "0.00", total.StringFixed(2))

	_, err = cart.UpdateQuantity(sess, lineId, 3)
	assert.ErrorIs(t, err, apperror.ErrItemNotFound)
}

func TestCartUpdateQuantityRecomputesTotal(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, catalog.CategoryDryCleaning, "office_shirt", 1, nil)
	require.NoError(t, err)

	total, err := cart.UpdateQuantity(sess, sess.Cart[0].ID, 4)
	require.NoError(t, err)
	assert.Equal(t, "22.00", total.StringFixed(2))
}

func TestCartClearIsIdempotent(t *testing.T) {
	cart := NewCartService()
	sess := store.NewSession("s1")

	_, err := cart.Add(sess, catalog.CategoryDryCleaning, "office_shirt", 1, nil)
	require.NoError(t, err)

	cart.Clear(sess)
	assert.Empty(t, sess.Cart)

	cart.Clear(sess)
	assert.Empty(t, sess.Cart)

	summary := cart.Summary(sess)
	assert.Zero(t, summary.LineCount)
	assert.Zero(t, summary.TotalQuantity)
	assert.Equal(t, "0.00", summary.Total.StringFixed(2))
	assert.NotNil(t, summary.Lines)
}
