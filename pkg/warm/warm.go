package warm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
	"golang.org/x/sync/errgroup"
)

type Refresher interface {
	Refresh(ctx context.Context, n gov.Network, kind gov.SnapshotKind, ref string) ([]byte, error)
}

type Pruner interface {
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// Warmer keeps the proposal lists and governance parameters of every network
// in the snapshot store, so that page loads rarely wait on the subgraph.
type Warmer struct {
	networks  []gov.Network
	r         Refresher
	p         Pruner
	retention time.Duration
	wm        gov.WebhookMessager

	now func() time.Time
}

func New(networks []gov.Network, r Refresher, p Pruner, retention time.Duration, wm gov.WebhookMessager) *Warmer {
	return &Warmer{
		networks:  networks,
		r:         r,
		p:         p,
		retention: retention,
		wm:        wm,
		now:       time.Now,
	}
}

// Background warms the store every interval until ctx is done.
func (w *Warmer) Background(ctx context.Context, interval time.Duration) error {
	for {
		err := w.Run(ctx)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Run refreshes every network concurrently and prunes old snapshots. Failed
// refreshes are reported and do not stop the run.
func (w *Warmer) Run(ctx context.Context) error {
	log.Default().Println("[warm] refreshing ", len(w.networks), " networks...")

	eg, egCtx := errgroup.WithContext(ctx)

	for _, n := range w.networks {
		n := n
		for _, kind := range []gov.SnapshotKind{gov.SnapshotProposals, gov.SnapshotParameters} {
			kind := kind
			eg.Go(func() error {
				_, err := w.r.Refresh(egCtx, n, kind, "")
				if err != nil {
					w.report(ctx, fmt.Errorf("refreshing %s: %w", gov.SnapshotID(n.Name, kind, ""), err))
				}
				return nil
			})
		}
	}

	eg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	if w.p != nil && w.retention > 0 {
		removed, err := w.p.DeleteOlderThan(ctx, w.now().Add(-w.retention))
		if err != nil {
			w.report(ctx, fmt.Errorf("pruning snapshots: %w", err))
		} else if removed > 0 {
			log.Default().Println("[warm] pruned ", removed, " snapshots")
		}
	}

	return nil
}

func (w *Warmer) report(ctx context.Context, err error) {
	log.Default().Println("[warm] ", err)

	if w.wm != nil {
		w.wm.NotifyWarning(ctx, err)
	}
}
