package governance

import (
	"context"

	"github.com/citizenwallet/govdash/internal/services/subgraph"
	"github.com/citizenwallet/govdash/pkg/gov"
)

// Subgraph is the raw query surface of the indexing service.
type Subgraph interface {
	Proposals(ctx context.Context, n gov.Network) ([]subgraph.ProposalSummary, error)
	Proposal(ctx context.Context, n gov.Network, id string) (*subgraph.Proposal, error)
	GovernanceParameters(ctx context.Context, n gov.Network) ([]subgraph.GovernanceParameters, error)
	VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error)
}

// Loader shapes subgraph responses into the dashboard's types.
type Loader struct {
	sg Subgraph
}

func NewLoader(sg Subgraph) *Loader {
	return &Loader{
		sg: sg,
	}
}

func (l *Loader) Proposals(ctx context.Context, n gov.Network) ([]gov.ProposalSummary, error) {
	raw, err := l.sg.Proposals(ctx, n)
	if err != nil {
		return nil, err
	}

	return ShapeProposals(raw), nil
}

func (l *Loader) Proposal(ctx context.Context, n gov.Network, id string) (*gov.Proposal, error) {
	raw, err := l.sg.Proposal(ctx, n, id)
	if err != nil {
		return nil, err
	}

	return ShapeProposal(raw), nil
}

func (l *Loader) GovernanceParameters(ctx context.Context, n gov.Network) ([]gov.GovernanceParameters, error) {
	raw, err := l.sg.GovernanceParameters(ctx, n)
	if err != nil {
		return nil, err
	}

	return ShapeGovernanceParameters(raw), nil
}

func (l *Loader) VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error) {
	votes, err := l.sg.VoterVotes(ctx, n, voter)
	if err != nil {
		return nil, err
	}

	SortVoterVotes(votes)

	return votes, nil
}
