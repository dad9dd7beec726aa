package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_WalksPages(t *testing.T) {
	pages := map[string]struct {
		items []int
		next  string
	}{
		"":   {items: []int{1, 2}, next: "p2"},
		"p2": {items: []int{3}, next: "p3"},
		"p3": {items: nil, next: ""},
	}
	iterator := NewIterator(func(ctx context.Context, cursor string) ([]int, string, error) {
		page := pages[cursor]
		return page.items, page.next, nil
	})

	collected, err := iterator.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, collected)
}

func TestIterator_EmptyListing(t *testing.T) {
	iterator := NewIterator(func(ctx context.Context, cursor string) ([]string, string, error) {
		return nil, "", nil
	})
	_, ok, err := iterator.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIterator_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	iterator := NewIterator(func(ctx context.Context, cursor string) ([]int, string, error) {
		if cursor == "" {
			return []int{1}, "p2", nil
		}
		return nil, "", boom
	})

	item, ok, err := iterator.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, item)

	_, _, err = iterator.Next(context.Background())
	assert.ErrorIs(t, err, boom)
}
