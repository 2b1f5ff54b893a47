package gov

// ParamsBlock carries the block timestamp in unix milliseconds.
type ParamsBlock struct {
	Number    string `json:"number"`
	Timestamp int64  `json:"timestamp"`
}

type DepositParams struct {
	ExpeditedMinDeposit []string `json:"expedited_min_deposit"`
	MaxDepositPeriod    string   `json:"max_deposit_period"`
	MinDeposit          []string `json:"min_deposit"`
}

type TallyParams struct {
	ExpeditedThreshold string `json:"expedited_threshold"`
	ExpeditedQuorum    string `json:"expedited_quorum"`
	Threshold          string `json:"threshold"`
	Quorum             string `json:"quorum"`
	VetoThreshold      string `json:"veto_threshold"`
}

// VotingParams periods are nanosecond durations.
type VotingParams struct {
	ExpeditedVotingPeriod string `json:"expedited_voting_period"`
	VotingPeriod          string `json:"voting_period"`
}

type GovernanceParameters struct {
	Block         ParamsBlock   `json:"block"`
	DepositParams DepositParams `json:"deposit_params"`
	TallyParams   TallyParams   `json:"tally_params"`
	VotingParams  VotingParams  `json:"voting_params"`
}
