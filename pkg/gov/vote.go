package gov

// Block timestamps on votes are unix seconds, kept as the subgraph's string.
type Block struct {
	Timestamp string `json:"timestamp"`
}

type Vote struct {
	Voter  string `json:"voter"`
	Option string `json:"option"`
	Block  Block  `json:"block"`
}

type ProposalRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// VoterVote is an entry of a voter's history.
type VoterVote struct {
	Option   string      `json:"option"`
	Weight   string      `json:"weight"`
	Block    Block       `json:"block"`
	Proposal ProposalRef `json:"proposal"`
}
