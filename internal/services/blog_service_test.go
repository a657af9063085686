package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noiratelier/internal/domain"
	"noiratelier/internal/seed"
)

func TestBlogFeaturedAndOthers(t *testing.T) {
	b := NewBlogService(seed.Posts())

	f, ok := b.Featured()
	require.True(t, ok)
	assert.Equal(t, "1", f.ID)
	assert.Len(t, b.Others(), 3)

	_, ok = NewBlogService(nil).Featured()
	assert.False(t, ok)
	assert.Empty(t, NewBlogService(nil).Others())
}

func TestBlogRelatedSharesCategory(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: "a", Category: "Style"},
		{ID: "b", Category: "Style"},
		{ID: "c", Category: "Care"},
		{ID: "d", Category: "Style"},
		{ID: "e", Category: "Style"},
	}
	b := NewBlogService(posts)
	post, ok := b.Get("a")
	require.True(t, ok)

	var got []string
	for _, p := range b.Related(post, 2) {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"b", "d"}, got)

	_, ok = b.Get("zzz")
	assert.False(t, ok)
}
