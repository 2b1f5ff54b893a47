package subgraph

import "github.com/citizenwallet/govdash/pkg/gov"

// Times on proposals are unix microseconds encoded as strings.
type ProposalSummary struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Type            string                `json:"type"`
	Status          string                `json:"status"`
	SubmitTime      string                `json:"submit_time"`
	DepositEndTime  string                `json:"deposit_end_time"`
	VotingEndTime   string                `json:"voting_end_time"`
	VotingStartTime string                `json:"voting_start_time"`
	Messages        []gov.ProposalMessage `json:"messages"`
}

type Deposit struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

type Proposal struct {
	ProposalSummary
	Summary  string     `json:"summary"`
	Deposits []Deposit  `json:"deposits"`
	Votes    []gov.Vote `json:"votes"`
}

type Block struct {
	Number    string `json:"number"`
	Timestamp string `json:"timestamp"`
}

type GovernanceParameters struct {
	Block         Block             `json:"block"`
	DepositParams gov.DepositParams `json:"deposit_params"`
	TallyParams   gov.TallyParams   `json:"tally_params"`
	VotingParams  gov.VotingParams  `json:"voting_params"`
}

type proposalsResponse struct {
	Proposals []ProposalSummary `json:"proposals"`
}

type proposalResponse struct {
	Proposal *Proposal `json:"proposal"`
}

type governanceParametersResponse struct {
	GovernanceParameters []GovernanceParameters `json:"governanceParameters"`
}

type voterResponse struct {
	Votes []gov.VoterVote `json:"votes"`
}
