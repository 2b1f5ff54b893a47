package web

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/internal/governance"
	"github.com/citizenwallet/govdash/internal/networks"
	"github.com/dustin/go-humanize"
)

const (
	timeLayout      = "Jan 2, 2006, 15:04 UTC"
	blockTimeLayout = "January 2, 2006 at 03:04 PM"
)

var funcs = template.FuncMap{
	"millis":      formatMillis,
	"seconds":     formatSeconds,
	"ago":         agoMillis,
	"comma":       func(n int) string { return humanize.Comma(int64(n)) },
	"percent":     func(f float64) string { return fmt.Sprintf("%.1f%%", f) },
	"shorten":     func(s string) string { return common.ShortenAddress(s, 10) },
	"status":      governance.StatusLabel,
	"statusClass": statusClass,
	"optionClass": optionClass,
	"join":        strings.Join,
	"networkName": networks.DisplayName,
}

func formatMillis(ms int64) string {
	if ms <= 0 {
		return "N/A"
	}

	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

func formatSeconds(s string) string {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return "N/A"
	}

	return time.Unix(v, 0).UTC().Format(timeLayout)
}

func agoMillis(ms int64) string {
	if ms <= 0 {
		return ""
	}

	return humanize.Time(time.UnixMilli(ms))
}

func statusClass(status string) string {
	switch status {
	case "Passed":
		return "passed"
	case "Rejected":
		return "rejected"
	case "VotingPeriod":
		return "voting"
	}
	return "neutral"
}

func optionClass(option string) string {
	switch governance.NormalizeOption(option) {
	case governance.OptionYes:
		return "yes"
	case governance.OptionNo:
		return "no"
	case governance.OptionNoWithVeto:
		return "veto"
	case governance.OptionAbstain:
		return "abstain"
	}
	return "neutral"
}
