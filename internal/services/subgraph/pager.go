package subgraph

import "context"

// BatchSize is the page size used when walking a collection. The gateway
// caps `first` at 1000.
const BatchSize = 1000

type pageFunc[T any] func(ctx context.Context, first, skip int) ([]T, error)

// fetchAll pages through a collection until a page comes back shorter than
// batch, which marks the end.
func fetchAll[T any](ctx context.Context, batch int, page pageFunc[T]) ([]T, error) {
	all := []T{}

	for skip := 0; ; skip += batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, err := page(ctx, batch, skip)
		if err != nil {
			return nil, err
		}

		all = append(all, rows...)

		if len(rows) < batch {
			return all, nil
		}
	}
}
