package gov

import (
	"errors"
	"fmt"
	"time"
)

type Message struct {
	ID         string
	CreatedAt  time.Time
	RetryCount int
	Message    any
}

// SnapshotKind names the kind of data a snapshot holds.
type SnapshotKind string

const (
	SnapshotProposals  SnapshotKind = "proposals"
	SnapshotProposal   SnapshotKind = "proposal"
	SnapshotParameters SnapshotKind = "parameters"
	SnapshotVoter      SnapshotKind = "voter"
)

// RefreshMessage asks for a snapshot to be fetched again from the subgraph.
type RefreshMessage struct {
	Network Network
	Kind    SnapshotKind
	Key     string
}

func newMessage(id string, message any) *Message {
	return &Message{
		ID:         id,
		CreatedAt:  time.Now(),
		RetryCount: 0,
		Message:    message,
	}
}

func NewRefreshMessage(n Network, kind SnapshotKind, key string) *Message {
	return newMessage(SnapshotID(n.Name, kind, key), RefreshMessage{
		Network: n,
		Kind:    kind,
		Key:     key,
	})
}

// SnapshotID identifies a snapshot across networks and kinds.
func SnapshotID(network string, kind SnapshotKind, key string) string {
	return fmt.Sprintf("%s/%s/%s", network, kind, key)
}

// Snapshot is a shaped response kept by the snapshot store.
type Snapshot struct {
	Network   string
	Kind      SnapshotKind
	Ref       string
	Body      []byte
	FetchedAt time.Time
}

var ErrSnapshotNotFound = errors.New("snapshot not found")
