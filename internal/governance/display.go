package governance

import (
	"math/big"
	"strings"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
)

const day = 24 * time.Hour

type Summary struct {
	Total        int
	VotingPeriod int
	Passed       int
	Rejected     int
}

func Summarize(proposals []gov.ProposalSummary) Summary {
	s := Summary{Total: len(proposals)}

	for _, p := range proposals {
		switch p.Status {
		case gov.StatusVotingPeriod:
			s.VotingPeriod++
		case gov.StatusPassed:
			s.Passed++
		case gov.StatusRejected:
			s.Rejected++
		}
	}

	return s
}

// IsLive reports whether a proposal is still collecting deposits or votes.
func IsLive(status string) bool {
	return status == gov.StatusVotingPeriod || status == gov.StatusDepositPeriod
}

// ProposalType is the last segment of the first message's type URL,
// e.g. "MsgSoftwareUpgrade" for "/cosmos.upgrade.v1beta1.MsgSoftwareUpgrade".
func ProposalType(msgs []gov.ProposalMessage) string {
	if len(msgs) == 0 {
		return ""
	}

	t := msgs[0].Type
	return t[strings.LastIndex(t, ".")+1:]
}

// StatusLabel makes a status readable, e.g. "VOTING_PERIOD" becomes "VOTING PERIOD".
func StatusLabel(status string) string {
	return strings.Replace(status, "_", " ", 1)
}

// RemainingDays counts whole days until end.
func RemainingDays(end, now time.Time) int {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(remaining / day)
}

// NanosToDays renders a nanosecond duration in days, e.g. "14 days" or "0.5 days".
func NanosToDays(nanos string) string {
	v, ok := new(big.Rat).SetString(strings.TrimSpace(nanos))
	if !ok {
		return nanos
	}

	days := v.Quo(v, new(big.Rat).SetInt64(int64(day)))
	s := trimDecimal(days.FloatString(6))

	if s == "1" {
		return "1 day"
	}

	return s + " days"
}

// Vote options as displayed in the voting results.
const (
	OptionYes        = "Yes"
	OptionNo         = "No"
	OptionNoWithVeto = "NoWithVeto"
	OptionAbstain    = "Abstain"
)

// NormalizeOption maps the spellings used across chains and SDK versions
// ("YES", "VOTE_OPTION_YES", "Yes", "VETO", ...) to a display option. Unknown
// options are returned unchanged.
func NormalizeOption(option string) string {
	o := strings.ToUpper(strings.TrimSpace(option))
	o = strings.TrimPrefix(o, "VOTE_OPTION_")
	o = strings.ReplaceAll(o, "_", "")

	switch o {
	case "YES":
		return OptionYes
	case "NO":
		return OptionNo
	case "NOWITHVETO", "VETO":
		return OptionNoWithVeto
	case "ABSTAIN":
		return OptionAbstain
	}

	return option
}

type Tally struct {
	Yes        int
	No         int
	NoWithVeto int
	Abstain    int
	Other      int
}

func (t Tally) Total() int {
	return t.Yes + t.No + t.NoWithVeto + t.Abstain + t.Other
}

// Percent returns the share of n in the tally, 0 when there are no votes.
func (t Tally) Percent(n int) float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}

	return float64(n) * 100 / float64(total)
}

// CountVotes tallies votes per option, one vote per voter entry.
func CountVotes(votes []gov.Vote) Tally {
	var t Tally

	for _, v := range votes {
		switch NormalizeOption(v.Option) {
		case OptionYes:
			t.Yes++
		case OptionNo:
			t.No++
		case OptionNoWithVeto:
			t.NoWithVeto++
		case OptionAbstain:
			t.Abstain++
		default:
			t.Other++
		}
	}

	return t
}
