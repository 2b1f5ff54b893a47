package governance

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/internal/services/subgraph"
	"github.com/citizenwallet/govdash/pkg/gov"
)

// depositScale converts base denom amounts (18 decimals) to whole tokens.
var depositScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// microsToMillis converts a subgraph time in microseconds. Empty or invalid
// input yields 0.
func microsToMillis(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return v / 1000
}

// optionalMillis is nil for missing or unparsable times. A literal "0" is
// kept as 0.
func optionalMillis(s string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}

	v /= 1000
	return &v
}

func secondsToMillis(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return v * 1000
}

func timestamp(s string) int64 {
	v, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return v
}

func ShapeProposals(raw []subgraph.ProposalSummary) []gov.ProposalSummary {
	proposals := make([]gov.ProposalSummary, 0, len(raw))

	for _, p := range raw {
		proposals = append(proposals, gov.ProposalSummary{
			ID:              p.ID,
			Title:           p.Title,
			Type:            p.Type,
			Status:          p.Status,
			SubmitTime:      microsToMillis(p.SubmitTime),
			DepositEndTime:  microsToMillis(p.DepositEndTime),
			VotingEndTime:   microsToMillis(p.VotingEndTime),
			VotingStartTime: microsToMillis(p.VotingStartTime),
			Messages:        messages(p.Messages),
		})
	}

	return proposals
}

func ShapeProposal(raw *subgraph.Proposal) *gov.Proposal {
	votes := append([]gov.Vote{}, raw.Votes...)
	SortVotes(votes)

	return &gov.Proposal{
		ID:              raw.ID,
		Title:           raw.Title,
		Summary:         raw.Summary,
		Type:            raw.Type,
		Status:          raw.Status,
		SubmitTime:      microsToMillis(raw.SubmitTime),
		DepositEndTime:  microsToMillis(raw.DepositEndTime),
		VotingEndTime:   optionalMillis(raw.VotingEndTime),
		VotingStartTime: optionalMillis(raw.VotingStartTime),
		Messages:        messages(raw.Messages),
		Votes:           votes,
		TotalDeposit:    TotalDeposit(raw.Deposits),
	}
}

func ShapeGovernanceParameters(raw []subgraph.GovernanceParameters) []gov.GovernanceParameters {
	params := make([]gov.GovernanceParameters, 0, len(raw))

	for _, p := range raw {
		params = append(params, gov.GovernanceParameters{
			Block: gov.ParamsBlock{
				Number:    p.Block.Number,
				Timestamp: secondsToMillis(p.Block.Timestamp),
			},
			DepositParams: p.DepositParams,
			TallyParams:   p.TallyParams,
			VotingParams:  p.VotingParams,
		})
	}

	return params
}

func messages(m []gov.ProposalMessage) []gov.ProposalMessage {
	if m == nil {
		return []gov.ProposalMessage{}
	}
	return m
}

// SortVotes orders votes by block time, newest first.
func SortVotes(votes []gov.Vote) {
	sort.SliceStable(votes, func(i, j int) bool {
		return timestamp(votes[i].Block.Timestamp) > timestamp(votes[j].Block.Timestamp)
	})
}

// SortVoterVotes orders a voter's history by block time, newest first.
func SortVoterVotes(votes []gov.VoterVote) {
	sort.SliceStable(votes, func(i, j int) bool {
		return timestamp(votes[i].Block.Timestamp) > timestamp(votes[j].Block.Timestamp)
	})
}

// TotalDeposit sums deposit amounts and renders them in whole tokens using the
// first deposit's denom, e.g. "512.5 INJ". Amounts that do not parse are
// skipped.
func TotalDeposit(deposits []subgraph.Deposit) string {
	if len(deposits) == 0 {
		return "0"
	}

	sum := new(big.Int)
	for _, d := range deposits {
		sum.Add(sum, common.ParseBigInt(strings.TrimSpace(d.Amount)))
	}

	total := new(big.Rat).SetFrac(sum, depositScale)

	return strings.TrimSpace(trimDecimal(total.FloatString(18)) + " " + strings.ToUpper(deposits[0].Denom))
}

func trimDecimal(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
