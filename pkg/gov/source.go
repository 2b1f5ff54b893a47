package gov

import (
	"context"
	"errors"
)

var (
	ErrUnknownNetwork   = errors.New("unknown network")
	ErrProposalNotFound = errors.New("proposal not found")
)

// Source serves shaped governance data for a network.
type Source interface {
	Proposals(ctx context.Context, n Network) ([]ProposalSummary, error)
	Proposal(ctx context.Context, n Network, id string) (*Proposal, error)
	GovernanceParameters(ctx context.Context, n Network) ([]GovernanceParameters, error)
	VoterVotes(ctx context.Context, n Network, voter string) ([]VoterVote, error)
}
