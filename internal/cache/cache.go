package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
)

type Store interface {
	GetSnapshot(ctx context.Context, network string, kind gov.SnapshotKind, ref string) (*gov.Snapshot, error)
	PutSnapshot(ctx context.Context, s *gov.Snapshot) error
}

type Enqueuer interface {
	Enqueue(message gov.Message) error
}

// Source serves governance data from the snapshot store and falls back to
// next when a snapshot is missing or too old. Snapshots younger than maxAge
// are served as is; snapshots younger than maxAge+swr are served while a
// refresh is queued.
type Source struct {
	next  gov.Source
	store Store
	q     Enqueuer

	maxAge time.Duration
	swr    time.Duration
	now    func() time.Time

	pending sync.Map
}

func New(next gov.Source, store Store, maxAge, swr time.Duration) *Source {
	return &Source{
		next:   next,
		store:  store,
		maxAge: maxAge,
		swr:    swr,
		now:    time.Now,
	}
}

// SetQueue sets the queue that stale snapshots are refreshed through. Without
// one, stale snapshots are refreshed inline.
func (s *Source) SetQueue(q Enqueuer) {
	s.q = q
}

func (s *Source) fetch(ctx context.Context, n gov.Network, kind gov.SnapshotKind, ref string) (any, error) {
	switch kind {
	case gov.SnapshotProposals:
		return s.next.Proposals(ctx, n)
	case gov.SnapshotProposal:
		return s.next.Proposal(ctx, n, ref)
	case gov.SnapshotParameters:
		return s.next.GovernanceParameters(ctx, n)
	case gov.SnapshotVoter:
		return s.next.VoterVotes(ctx, n, ref)
	}

	return nil, fmt.Errorf("unknown snapshot kind %q", kind)
}

// Refresh fetches a snapshot from the subgraph and stores it.
func (s *Source) Refresh(ctx context.Context, n gov.Network, kind gov.SnapshotKind, ref string) ([]byte, error) {
	// the pending marker is cleared on failed attempts as well
	defer s.pending.Delete(gov.SnapshotID(n.Name, kind, ref))

	v, err := s.fetch(ctx, n, kind, ref)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	err = s.store.PutSnapshot(ctx, &gov.Snapshot{
		Network:   n.Name,
		Kind:      kind,
		Ref:       ref,
		Body:      b,
		FetchedAt: s.now(),
	})
	if err != nil {
		// the response is still good, only the snapshot is lost
		log.Default().Println("failed to store snapshot", gov.SnapshotID(n.Name, kind, ref), ": ", err)
	}

	return b, nil
}

func (s *Source) load(ctx context.Context, n gov.Network, kind gov.SnapshotKind, ref string) ([]byte, error) {
	snap, err := s.store.GetSnapshot(ctx, n.Name, kind, ref)
	if err != nil && !errors.Is(err, gov.ErrSnapshotNotFound) {
		log.Default().Println("failed to read snapshot", gov.SnapshotID(n.Name, kind, ref), ": ", err)
	}

	if err == nil {
		age := s.now().Sub(snap.FetchedAt)
		if age < s.maxAge {
			return snap.Body, nil
		}

		if age < s.maxAge+s.swr && s.q != nil {
			s.revalidate(n, kind, ref)
			return snap.Body, nil
		}
	}

	return s.Refresh(ctx, n, kind, ref)
}

// revalidate queues a refresh unless one is already pending.
func (s *Source) revalidate(n gov.Network, kind gov.SnapshotKind, ref string) {
	m := gov.NewRefreshMessage(n, kind, ref)

	if _, loaded := s.pending.LoadOrStore(m.ID, true); loaded {
		return
	}

	if err := s.q.Enqueue(*m); err != nil {
		s.pending.Delete(m.ID)
	}
}

// Process handles queued refresh messages.
func (s *Source) Process(m gov.Message) error {
	msg, ok := m.Message.(gov.RefreshMessage)
	if !ok {
		return fmt.Errorf("unexpected message %s of type %T", m.ID, m.Message)
	}

	_, err := s.Refresh(context.Background(), msg.Network, msg.Kind, msg.Key)
	return err
}

func decode[T any](b []byte, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}

	err = json.Unmarshal(b, &v)
	return v, err
}

func (s *Source) Proposals(ctx context.Context, n gov.Network) ([]gov.ProposalSummary, error) {
	return decode[[]gov.ProposalSummary](s.load(ctx, n, gov.SnapshotProposals, ""))
}

func (s *Source) Proposal(ctx context.Context, n gov.Network, id string) (*gov.Proposal, error) {
	return decode[*gov.Proposal](s.load(ctx, n, gov.SnapshotProposal, id))
}

func (s *Source) GovernanceParameters(ctx context.Context, n gov.Network) ([]gov.GovernanceParameters, error) {
	return decode[[]gov.GovernanceParameters](s.load(ctx, n, gov.SnapshotParameters, ""))
}

func (s *Source) VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error) {
	return decode[[]gov.VoterVote](s.load(ctx, n, gov.SnapshotVoter, voter))
}
