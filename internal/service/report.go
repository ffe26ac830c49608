package service

import (
	"fmt"
	"strings"
	"time"
)

const reportRule = "================================================================================"

// SummaryReport renders a plain-text summary of a batch run, grouping games
// into value bets, no-value games and failures.
func SummaryReport(result *BatchResult) string {
	if result == nil || len(result.Games) == 0 {
		return "No games analysed."
	}

	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("SUMMARY REPORT - LIVE GAMES ANALYSIS\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Total games analysed: %d\n", len(result.Games))
	fmt.Fprintf(&b, "Analysis time: %s\n\n", result.StartedAt.Format(time.DateTime))

	var valueBets, noValue, failures []AnalyzedGame
	for _, game := range result.Games {
		switch {
		case game.Err != nil:
			failures = append(failures, game)
		case game.Analysis != nil && game.Analysis.Valuation.HasValueBet():
			valueBets = append(valueBets, game)
		default:
			noValue = append(noValue, game)
		}
	}

	fmt.Fprintf(&b, "Games with betting opportunities: %d\n", len(valueBets))
	for _, game := range valueBets {
		best := game.Analysis.Valuation.BestRecommendation()
		fmt.Fprintf(&b, "  - %s vs %s: bet %s (EV: %+.1f%%)\n",
			game.Game.Team1, game.Game.Team2, best.Outcome, best.ExpectedValue*100)
	}

	fmt.Fprintf(&b, "\nGames to avoid: %d\n", len(noValue))
	for _, game := range noValue {
		fmt.Fprintf(&b, "  - %s vs %s: no value bet found\n", game.Game.Team1, game.Game.Team2)
	}

	if len(failures) > 0 {
		fmt.Fprintf(&b, "\nGames with errors: %d\n", len(failures))
		for _, game := range failures {
			fmt.Fprintf(&b, "  - %s vs %s: %v\n", game.Game.Team1, game.Game.Team2, game.Err)
		}
	}

	b.WriteString("\n" + reportRule + "\n")
	b.WriteString("DISCLAIMER: This analysis is for informational purposes only.\n")
	b.WriteString("Always gamble responsibly and within your means.\n")
	b.WriteString(reportRule + "\n")

	return b.String()
}
