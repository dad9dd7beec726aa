package client

import "context"

// PageFunc fetches one page for a cursor; an empty next cursor ends the
// iteration.
type PageFunc[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// Iterator walks a cursor-paged listing one item at a time, fetching pages
// lazily.
type Iterator[T any] struct {
	fetch  PageFunc[T]
	buffer []T
	next   string
	// started distinguishes "before first page" from "cursor exhausted"
	started bool
}

// NewIterator creates an iterator over fetch.
func NewIterator[T any](fetch PageFunc[T]) *Iterator[T] {
	return &Iterator[T]{fetch: fetch}
}

// Next returns the next item; ok is false when the listing is exhausted.
func (it *Iterator[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	for len(it.buffer) == 0 {
		if it.started && it.next == "" {
			return item, false, nil
		}
		items, next, err := it.fetch(ctx, it.next)
		if err != nil {
			return item, false, err
		}
		it.started = true
		it.next = next
		it.buffer = items
		if len(items) == 0 && next == "" {
			return item, false, nil
		}
	}
	item = it.buffer[0]
	it.buffer = it.buffer[1:]
	return item, true, nil
}

// Collect drains the iterator into a slice.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var ret []T
	for {
		item, ok, err := it.Next(ctx)
		if err != nil {
			return ret, err
		}
		if !ok {
			return ret, nil
		}
		ret = append(ret, item)
	}
}
