package repos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SlotRepo {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSlotRepo(db)
}

func TestSlotRepoLoadMissing(t *testing.T) {
	r := openTestDB(t)
	v, ok, err := r.Load("nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSlotRepoSaveReplacesWhole(t *testing.T) {
	r := openTestDB(t)
	require.NoError(t, r.Save("cart:a", []byte(`[{"productId":"1"}]`)))
	require.NoError(t, r.Save("cart:a", []byte(`[]`)))
	require.NoError(t, r.Save("cart:b", []byte(`[{"productId":"2"}]`)))

	v, ok, err := r.Load("cart:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	v, _, err = r.Load("cart:b")
	require.NoError(t, err)
	assert.Equal(t, `[{"productId":"2"}]`, string(v))
}

func TestWishlistRepo(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	r := NewWishlistRepo(db)

	id, err := r.Ensure("sid-1")
	require.NoError(t, err)
	again, err := r.Ensure("sid-1")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	require.NoError(t, r.Add(id, "3"))
	require.NoError(t, r.Add(id, "1"))
	require.NoError(t, r.Add(id, "3"))

	got, err := r.ProductIDs(id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"3", "1"}, got)

	require.NoError(t, r.Remove(id, "3"))
	got, err = r.ProductIDs(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, got)
}

func TestContactRepo(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	r := NewContactRepo(db)

	require.NoError(t, r.Create(ContactMessage{ID: "m1", Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there, friends"}))
	var name string
	require.NoError(t, db.Get(&name, `SELECT name FROM contact_messages WHERE id = 'm1'`))
	assert.Equal(t, "Ada", name)

	created, err := r.Subscribe("Ada@Example.com")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = r.Subscribe("ada@example.com")
	require.NoError(t, err)
	assert.False(t, created, "same address in another case is a repeat")
}
