package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiratelier/internal/repos"
)

func TestWishlistSaveListUnsave(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	svc := NewWishlistService(repos.NewWishlistRepo(db), newCatalog(t))

	assert.ErrorIs(t, svc.Save("s1", "404"), ErrUnknownProduct)
	require.NoError(t, svc.Save("s1", "12"))
	require.NoError(t, svc.Save("s1", "6"))
	require.NoError(t, svc.Save("s1", "6"))

	list, err := svc.List("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "12"}, ids(list), "sorted by name")

	other, err := svc.List("s2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, svc.Unsave("s1", "6"))
	list, err = svc.List("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, ids(list))
}
