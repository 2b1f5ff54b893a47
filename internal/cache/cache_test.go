package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu    sync.Mutex
	snaps map[string]*gov.Snapshot
}

func newMemStore() *memStore {
	return &memStore{snaps: map[string]*gov.Snapshot{}}
}

func (m *memStore) GetSnapshot(ctx context.Context, network string, kind gov.SnapshotKind, ref string) (*gov.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.snaps[gov.SnapshotID(network, kind, ref)]
	if !ok {
		return nil, gov.ErrSnapshotNotFound
	}
	return s, nil
}

func (m *memStore) PutSnapshot(ctx context.Context, s *gov.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snaps[gov.SnapshotID(s.Network, s.Kind, s.Ref)] = s
	return nil
}

type countingSource struct {
	calls int
	title string
	err   error
}

func (c *countingSource) Proposals(ctx context.Context, n gov.Network) ([]gov.ProposalSummary, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []gov.ProposalSummary{{ID: "1", Title: c.title}}, nil
}

func (c *countingSource) Proposal(ctx context.Context, n gov.Network, id string) (*gov.Proposal, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &gov.Proposal{ID: id, Title: c.title, Votes: []gov.Vote{{Voter: "inj1", Option: "YES"}}}, nil
}

func (c *countingSource) GovernanceParameters(ctx context.Context, n gov.Network) ([]gov.GovernanceParameters, error) {
	c.calls++
	return []gov.GovernanceParameters{{Block: gov.ParamsBlock{Number: "1"}}}, c.err
}

func (c *countingSource) VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error) {
	c.calls++
	return []gov.VoterVote{{Option: "NO"}}, c.err
}

type recordingQueue struct {
	messages []gov.Message
}

func (q *recordingQueue) Enqueue(m gov.Message) error {
	q.messages = append(q.messages, m)
	return nil
}

var injective = gov.Network{Name: "injective", SubgraphID: "abc"}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	next := &countingSource{title: "v1"}
	q := &recordingQueue{}

	s := New(next, newMemStore(), time.Hour, time.Minute)
	s.SetQueue(q)
	s.now = func() time.Time { return now }

	// miss
	props, err := s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "v1", props[0].Title)
	require.Equal(t, 1, next.calls)

	// fresh
	next.title = "v2"
	now = now.Add(30 * time.Minute)
	props, err = s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "v1", props[0].Title)
	require.Equal(t, 1, next.calls)

	// stale while revalidating, a single refresh is queued
	now = now.Add(30*time.Minute + 30*time.Second)
	for i := 0; i < 3; i++ {
		props, err = s.Proposals(ctx, injective)
		require.NoError(t, err)
		require.Equal(t, "v1", props[0].Title)
	}
	require.Equal(t, 1, next.calls)
	require.Len(t, q.messages, 1)

	// the queued refresh updates the snapshot
	require.NoError(t, s.Process(q.messages[0]))
	require.Equal(t, 2, next.calls)

	props, err = s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "v2", props[0].Title)

	// expired
	next.title = "v3"
	now = now.Add(2 * time.Hour)
	props, err = s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "v3", props[0].Title)
	require.Equal(t, 3, next.calls)
}

func TestKindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	next := &countingSource{title: "p"}

	s := New(next, newMemStore(), time.Hour, 0)

	p1, err := s.Proposal(ctx, injective, "1")
	require.NoError(t, err)
	require.Equal(t, "1", p1.ID)
	require.Len(t, p1.Votes, 1)

	p2, err := s.Proposal(ctx, injective, "2")
	require.NoError(t, err)
	require.Equal(t, "2", p2.ID)

	params, err := s.GovernanceParameters(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "1", params[0].Block.Number)

	votes, err := s.VoterVotes(ctx, injective, "inj1")
	require.NoError(t, err)
	require.Equal(t, "NO", votes[0].Option)

	require.Equal(t, 4, next.calls)
}

func TestErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := &countingSource{err: gov.ErrProposalNotFound}
	store := newMemStore()

	s := New(next, store, time.Hour, 0)

	_, err := s.Proposal(ctx, injective, "9")
	require.True(t, errors.Is(err, gov.ErrProposalNotFound))
	require.Empty(t, store.snaps)

	_, err = s.Proposal(ctx, injective, "9")
	require.Error(t, err)
	require.Equal(t, 2, next.calls)
}

func TestProcessRejectsUnknownMessages(t *testing.T) {
	s := New(&countingSource{}, newMemStore(), time.Hour, 0)

	err := s.Process(gov.Message{ID: "x", Message: 42})
	require.Error(t, err)
}

func TestFailedRevalidationQueuesAgain(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	next := &countingSource{title: "v1"}
	q := &recordingQueue{}

	s := New(next, newMemStore(), time.Hour, time.Minute)
	s.SetQueue(q)
	s.now = func() time.Time { return now }

	_, err := s.Proposals(ctx, injective)
	require.NoError(t, err)

	// stale, one refresh queued
	now = now.Add(time.Hour + time.Second)
	_, err = s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Len(t, q.messages, 1)

	// every attempt of the queued refresh fails
	next.err = errors.New("gateway down")
	for i := 0; i < 4; i++ {
		require.Error(t, s.Process(q.messages[0]))
	}

	// the next stale read queues a new refresh
	next.err = nil
	props, err := s.Proposals(ctx, injective)
	require.NoError(t, err)
	require.Equal(t, "v1", props[0].Title)
	require.Len(t, q.messages, 2)

	_, pending := s.pending.Load(q.messages[1].ID)
	require.True(t, pending)

	require.NoError(t, s.Process(q.messages[1]))

	_, pending = s.pending.Load(q.messages[1].ID)
	require.False(t, pending)
}
