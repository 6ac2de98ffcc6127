package pager

import (
	"context"
	"iter"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/lineage/pkg/domain/model"
	"github.com/secmon-lab/lineage/pkg/domain/types"
	"github.com/secmon-lab/lineage/pkg/utils/logging"
)

// FetchFunc fetches one page of a page-numbered collection. page is 1-based.
// The returned PageInfo must carry TotalPages when page is 1.
type FetchFunc[T any] func(ctx context.Context, page int) ([]T, *model.PageInfo, error)

// Pager lists every item of a paginated collection in page order. Page 1 is
// probed first to learn the page count, then pages 1..P are fetched in
// increasing order. No page is requested concurrently.
type Pager[T any] struct {
	fetch      FetchFunc[T]
	totalPages int
	known      bool
}

type Option[T any] func(*Pager[T])

// WithTotalPages skips the probe request when the page count is already known
func WithTotalPages[T any](n int) Option[T] {
	return func(x *Pager[T]) {
		x.totalPages = n
		x.known = true
	}
}

func New[T any](fetch FetchFunc[T], options ...Option[T]) *Pager[T] {
	x := &Pager[T]{fetch: fetch}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// All returns a lazy sequence of items. Each iteration starts over from the
// probe, and breaking out of the loop stops further requests. A failed page
// yields the error once and ends the sequence.
func (x *Pager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		total := x.totalPages
		if !x.known {
			n, err := x.probe(ctx)
			if err != nil {
				yield(zero, err)
				return
			}
			total = n
		}

		for page := 1; page <= total; page++ {
			items, _, err := x.fetch(ctx, page)
			if err != nil {
				yield(zero, goerr.Wrap(err, "failed to fetch page", goerr.V("page", page), goerr.V("total_pages", total)))
				return
			}
			logging.From(ctx).Debug("fetched page", slog.Int("page", page), slog.Int("total_pages", total), slog.Int("items", len(items)))

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Collect fetches every page and returns all items. Nothing is returned on failure.
func (x *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for item, err := range x.All(ctx) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (x *Pager[T]) probe(ctx context.Context) (int, error) {
	_, info, err := x.fetch(ctx, 1)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to probe total pages")
	}
	if info == nil || info.TotalPages < 0 {
		return 0, goerr.Wrap(types.ErrInvalidResponse, "total pages is not available in probe response",
			goerr.V("page_info", info))
	}
	return info.TotalPages, nil
}
