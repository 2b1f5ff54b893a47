package governance

import (
	"testing"
	"time"

	"github.com/citizenwallet/govdash/pkg/gov"
)

func TestProposalType(t *testing.T) {
	inputs := [][]gov.ProposalMessage{
		{{Type: "/cosmos.upgrade.v1beta1.MsgSoftwareUpgrade"}},
		{{Type: "MsgText"}},
		{},
		nil,
	}

	expected := []string{
		"MsgSoftwareUpgrade",
		"MsgText",
		"",
		"",
	}

	for i, input := range inputs {
		output := ProposalType(input)
		if output != expected[i] {
			t.Errorf("ProposalType(%v) = %q, want %q", input, output, expected[i])
		}
	}
}

func TestNanosToDays(t *testing.T) {
	inputs := []string{
		"1209600000000000",
		"86400000000000",
		"43200000000000",
		"0",
		"forever",
	}

	expected := []string{
		"14 days",
		"1 day",
		"0.5 days",
		"0 days",
		"forever",
	}

	for i, input := range inputs {
		output := NanosToDays(input)
		if output != expected[i] {
			t.Errorf("NanosToDays(%q) = %q, want %q", input, output, expected[i])
		}
	}
}

func TestNormalizeOption(t *testing.T) {
	inputs := []string{
		"YES",
		"Yes",
		"VOTE_OPTION_NO",
		"VETO",
		"NO_WITH_VETO",
		"NoWithVeto",
		"ABSTAIN",
		"SPLIT",
	}

	expected := []string{
		OptionYes,
		OptionYes,
		OptionNo,
		OptionNoWithVeto,
		OptionNoWithVeto,
		OptionNoWithVeto,
		OptionAbstain,
		"SPLIT",
	}

	for i, input := range inputs {
		output := NormalizeOption(input)
		if output != expected[i] {
			t.Errorf("NormalizeOption(%q) = %q, want %q", input, output, expected[i])
		}
	}
}

func TestCountVotes(t *testing.T) {
	tally := CountVotes([]gov.Vote{
		{Option: "YES"},
		{Option: "YES"},
		{Option: "NO"},
		{Option: "VETO"},
		{Option: "ABSTAIN"},
		{Option: "WEIGHTED"},
	})

	if tally.Yes != 2 || tally.No != 1 || tally.NoWithVeto != 1 || tally.Abstain != 1 || tally.Other != 1 {
		t.Errorf("unexpected tally %+v", tally)
	}

	if tally.Total() != 6 {
		t.Errorf("Total() = %d, want 6", tally.Total())
	}

	if p := tally.Percent(tally.Yes); p < 33.3 || p > 33.4 {
		t.Errorf("Percent(Yes) = %f", p)
	}

	if (Tally{}).Percent(0) != 0 {
		t.Error("Percent of an empty tally should be 0")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]gov.ProposalSummary{
		{Status: gov.StatusVotingPeriod},
		{Status: gov.StatusPassed},
		{Status: gov.StatusPassed},
		{Status: gov.StatusRejected},
		{Status: gov.StatusDepositPeriod},
	})

	want := Summary{Total: 5, VotingPeriod: 1, Passed: 2, Rejected: 1}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}

	if !IsLive(gov.StatusDepositPeriod) || !IsLive(gov.StatusVotingPeriod) || IsLive(gov.StatusPassed) {
		t.Error("IsLive misclassifies statuses")
	}
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		end  time.Time
		want int
	}{
		{now.Add(-time.Hour), 0},
		{now.Add(23 * time.Hour), 0},
		{now.Add(49 * time.Hour), 2},
	}

	for _, tc := range cases {
		got := RemainingDays(tc.end, now)
		if got != tc.want {
			t.Errorf("RemainingDays(%v) = %d, want %d", tc.end, got, tc.want)
		}
	}

	if StatusLabel("VOTING_PERIOD") != "VOTING PERIOD" {
		t.Errorf("StatusLabel = %q", StatusLabel("VOTING_PERIOD"))
	}
}
