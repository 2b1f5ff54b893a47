package subgraph

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/citizenwallet/govdash/internal/networks"
	"github.com/citizenwallet/govdash/pkg/gov"
	"github.com/machinebox/graphql"
)

// Client queries the governance subgraph of each network through the gateway.
type Client struct {
	gateway string
	apiKey  string
	hc      *http.Client
	batch   int

	clients sync.Map
}

func New(gateway, apiKey string, timeout time.Duration) *Client {
	return &Client{
		gateway: gateway,
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		batch:   BatchSize,
	}
}

// WithBatchSize changes the page size used for votes.
func (c *Client) WithBatchSize(n int) *Client {
	if n > 0 {
		c.batch = n
	}
	return c
}

func (c *Client) client(n gov.Network) *graphql.Client {
	if cl, ok := c.clients.Load(n.Name); ok {
		return cl.(*graphql.Client)
	}

	cl := graphql.NewClient(networks.Endpoint(c.gateway, c.apiKey, n), graphql.WithHTTPClient(c.hc))

	actual, _ := c.clients.LoadOrStore(n.Name, cl)
	return actual.(*graphql.Client)
}

func (c *Client) run(ctx context.Context, n gov.Network, name, query string, vars map[string]any, resp any) error {
	req := graphql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}

	err := c.client(n).Run(ctx, req, resp)
	if err != nil {
		return fmt.Errorf("%s on %s: %w", name, n.Name, err)
	}

	return nil
}

// Proposals returns the latest 1000 proposals, newest block first.
func (c *Client) Proposals(ctx context.Context, n gov.Network) ([]ProposalSummary, error) {
	var resp proposalsResponse
	err := c.run(ctx, n, "GetProposals", proposalsQuery, nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Proposals, nil
}

// Proposal returns a proposal with all of its votes. The first page of votes
// also carries the proposal itself.
func (c *Client) Proposal(ctx context.Context, n gov.Network, id string) (*Proposal, error) {
	var p *Proposal

	votes, err := fetchAll(ctx, c.batch, func(ctx context.Context, first, skip int) ([]gov.Vote, error) {
		var resp proposalResponse
		err := c.run(ctx, n, "GetProposal", proposalQuery, map[string]any{
			"id":    id,
			"first": first,
			"skip":  skip,
		}, &resp)
		if err != nil {
			return nil, err
		}

		if resp.Proposal == nil {
			return nil, fmt.Errorf("%w: %s on %s", gov.ErrProposalNotFound, id, n.Name)
		}

		if p == nil {
			p = resp.Proposal
		}

		return resp.Proposal.Votes, nil
	})
	if err != nil {
		return nil, err
	}

	p.Votes = votes

	return p, nil
}

// GovernanceParameters returns every recorded parameter set, most recent first.
func (c *Client) GovernanceParameters(ctx context.Context, n gov.Network) ([]GovernanceParameters, error) {
	var resp governanceParametersResponse
	err := c.run(ctx, n, "GetGovernanceParameters", governanceParametersQuery, nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.GovernanceParameters, nil
}

// VoterVotes returns every vote cast by voter.
func (c *Client) VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error) {
	return fetchAll(ctx, c.batch, func(ctx context.Context, first, skip int) ([]gov.VoterVote, error) {
		var resp voterResponse
		err := c.run(ctx, n, "GetVoterVotes", voterVotesQuery, map[string]any{
			"voter": voter,
			"first": first,
			"skip":  skip,
		}, &resp)
		if err != nil {
			return nil, err
		}

		return resp.Votes, nil
	})
}
