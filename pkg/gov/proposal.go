package gov

// Proposal statuses as reported by the subgraph.
const (
	StatusDepositPeriod = "DepositPeriod"
	StatusVotingPeriod  = "VotingPeriod"
	StatusPassed        = "Passed"
	StatusRejected      = "Rejected"
)

type ProposalMessage struct {
	Type string `json:"type"`
}

// ProposalSummary is a row of the proposals list. Times are unix milliseconds.
type ProposalSummary struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	SubmitTime      int64             `json:"submit_time"`
	DepositEndTime  int64             `json:"deposit_end_time"`
	VotingEndTime   int64             `json:"voting_end_time"`
	VotingStartTime int64             `json:"voting_start_time"`
	Messages        []ProposalMessage `json:"messages"`
}

// Proposal is a single proposal with every vote cast on it, newest first.
// Voting times are nil until the proposal enters its voting period.
type Proposal struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Summary         string            `json:"summary"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	SubmitTime      int64             `json:"submit_time"`
	DepositEndTime  int64             `json:"deposit_end_time"`
	VotingEndTime   *int64            `json:"voting_end_time,omitempty"`
	VotingStartTime *int64            `json:"voting_start_time,omitempty"`
	Messages        []ProposalMessage `json:"messages"`
	Votes           []Vote            `json:"votes"`
	TotalDeposit    string            `json:"total_deposit"`
}
