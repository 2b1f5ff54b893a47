package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/citizenwallet/govdash/internal/networks"
	"github.com/citizenwallet/govdash/pkg/gov"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	fail      bool
	proposals []gov.ProposalSummary
	params    []gov.GovernanceParameters
}

func (f *fakeSource) Proposals(ctx context.Context, n gov.Network) ([]gov.ProposalSummary, error) {
	if f.fail {
		return nil, errors.New("gateway down")
	}
	return f.proposals, nil
}

func (f *fakeSource) Proposal(ctx context.Context, n gov.Network, id string) (*gov.Proposal, error) {
	if f.fail {
		return nil, errors.New("gateway down")
	}
	if id != "7" {
		return nil, fmt.Errorf("%w: %s", gov.ErrProposalNotFound, id)
	}

	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	votes := make([]gov.Vote, 0, 25)
	for i := 0; i < 25; i++ {
		opt := "VOTE_OPTION_YES"
		if i%5 == 0 {
			opt = "VOTE_OPTION_NO"
		}
		votes = append(votes, gov.Vote{Voter: fmt.Sprintf("inj1voter%02d", i), Option: opt, Block: gov.Block{Timestamp: "1714000000"}})
	}

	return &gov.Proposal{
		ID:            "7",
		Title:         "Upgrade",
		Summary:       `Line one\n\n**bold** <script>alert(1)</script>`,
		Status:        gov.StatusPassed,
		VotingEndTime: &end,
		Messages:      []gov.ProposalMessage{{Type: "/cosmos.upgrade.v1beta1.MsgSoftwareUpgrade"}},
		Votes:         votes,
		TotalDeposit:  "500 INJ",
	}, nil
}

func (f *fakeSource) GovernanceParameters(ctx context.Context, n gov.Network) ([]gov.GovernanceParameters, error) {
	if f.fail {
		return nil, errors.New("gateway down")
	}
	return f.params, nil
}

func (f *fakeSource) VoterVotes(ctx context.Context, n gov.Network, voter string) ([]gov.VoterVote, error) {
	if f.fail {
		return nil, errors.New("gateway down")
	}
	return []gov.VoterVote{{Option: "YES", Weight: "1", Proposal: gov.ProposalRef{ID: "7", Title: "Upgrade"}}}, nil
}

func newTestRouter(src gov.Source) http.Handler {
	s := NewService(networks.New(), src)
	s.now = func() time.Time { return time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	r.Get("/", s.Root)
	r.Get("/about", s.About)
	r.Get("/{network}", s.Network)
	r.Get("/{network}/proposal/{id}", s.Proposal)
	r.Get("/{network}/voter/{id}", s.Voter)
	r.Get("/{network}/governance-parameters", s.Parameters)

	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func testProposals() []gov.ProposalSummary {
	var proposals []gov.ProposalSummary
	for i := 20; i > 0; i-- {
		typ := "/cosmos.gov.v1.MsgExecLegacyContent"
		if i%2 == 0 {
			typ = "/cosmos.upgrade.v1beta1.MsgSoftwareUpgrade"
		}
		status := gov.StatusPassed
		if i == 20 {
			status = gov.StatusVotingPeriod
		}
		proposals = append(proposals, gov.ProposalSummary{
			ID:       fmt.Sprint(i),
			Title:    fmt.Sprintf("Proposal %d", i),
			Status:   status,
			Messages: []gov.ProposalMessage{{Type: typ}},
		})
	}
	return proposals
}

func TestRoot(t *testing.T) {
	rr := get(t, newTestRouter(&fakeSource{}), "/")

	require.Equal(t, http.StatusFound, rr.Code)
	require.Equal(t, "/injective", rr.Header().Get("Location"))
}

func TestStatusCodes(t *testing.T) {
	ok := newTestRouter(&fakeSource{proposals: testProposals()})
	failing := newTestRouter(&fakeSource{fail: true})

	cases := []struct {
		name   string
		h      http.Handler
		target string
		want   int
	}{
		{"about", ok, "/about", http.StatusOK},
		{"network", ok, "/injective", http.StatusOK},
		{"unknown network", ok, "/nowhere", http.StatusNotFound},
		{"proposal", ok, "/injective/proposal/7", http.StatusOK},
		{"proposal not found", ok, "/injective/proposal/8", http.StatusNotFound},
		{"proposal unknown network", ok, "/nowhere/proposal/7", http.StatusNotFound},
		{"voter", ok, "/injective/voter/inj1", http.StatusOK},
		{"parameters empty", ok, "/injective/governance-parameters", http.StatusOK},
		{"network upstream error", failing, "/injective", http.StatusBadGateway},
		{"proposal upstream error", failing, "/injective/proposal/7", http.StatusBadGateway},
		{"voter upstream error", failing, "/injective/voter/inj1", http.StatusBadGateway},
		{"parameters upstream error", failing, "/injective/governance-parameters", http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(t, tc.h, tc.target)
			if rr.Code != tc.want {
				t.Errorf("GET %s = %d, want %d", tc.target, rr.Code, tc.want)
			}
		})
	}
}

func TestNetworkPage(t *testing.T) {
	h := newTestRouter(&fakeSource{proposals: testProposals()})

	t.Run("first page", func(t *testing.T) {
		body := get(t, h, "/injective").Body.String()

		require.Contains(t, body, "Showing 1 to 15 of 20")
		require.Contains(t, body, `href="/injective/proposal/20"`)
		require.Contains(t, body, "Page 1 of 2")
		require.Contains(t, body, "VotingPeriod")
	})

	t.Run("second page", func(t *testing.T) {
		body := get(t, h, "/injective?page=2").Body.String()

		require.Contains(t, body, "Showing 16 to 20 of 20")
		require.Contains(t, body, "Previous")
	})

	t.Run("type filter", func(t *testing.T) {
		body := get(t, h, "/injective?type=MsgSoftwareUpgrade").Body.String()

		require.Contains(t, body, "Showing 1 to 10 of 10")
		require.Contains(t, body, `<option value="MsgSoftwareUpgrade" selected>`)
	})

	t.Run("title filter", func(t *testing.T) {
		body := get(t, h, "/injective?title=proposal+13").Body.String()

		require.Contains(t, body, "Showing 1 to 1 of 1")
		require.Contains(t, body, "Proposal 13")
	})
}

func TestProposalPage(t *testing.T) {
	h := newTestRouter(&fakeSource{})

	body := get(t, h, "/injective/proposal/7").Body.String()

	require.Contains(t, body, "<strong>bold</strong>")
	require.NotContains(t, body, "<script>")
	require.Contains(t, body, "MsgSoftwareUpgrade")
	require.Contains(t, body, "500 INJ")
	require.Contains(t, body, "80.0%")
	require.Contains(t, body, "Showing 1 to 20 of 25")
	require.Contains(t, body, `href="/injective/voter/inj1voter00"`)

	body = get(t, h, "/injective/proposal/7?page=2").Body.String()
	require.Contains(t, body, "Showing 21 to 25 of 25")
}

func TestParametersPage(t *testing.T) {
	empty := get(t, newTestRouter(&fakeSource{}), "/injective/governance-parameters").Body.String()
	require.Contains(t, empty, "No data available")

	src := &fakeSource{params: []gov.GovernanceParameters{
		{
			Block: gov.ParamsBlock{Number: "120", Timestamp: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC).UnixMilli()},
			DepositParams: gov.DepositParams{
				MinDeposit:       []string{"500000000000000000000inj"},
				MaxDepositPeriod: "172800000000000",
			},
			VotingParams: gov.VotingParams{VotingPeriod: "86400000000000"},
			TallyParams:  gov.TallyParams{Quorum: "0.334"},
		},
		{Block: gov.ParamsBlock{Number: "100"}},
	}}

	body := get(t, newTestRouter(src), "/injective/governance-parameters").Body.String()

	require.Contains(t, body, "2 days")
	require.Contains(t, body, "1 day<")
	require.Contains(t, body, "0.334")
	require.Contains(t, body, "March 5, 2024 at 02:30 PM")
	require.True(t, strings.Contains(body, ">120<"), "latest block is rendered")
	require.False(t, strings.Contains(body, ">100<"), "older blocks are not rendered")
}
