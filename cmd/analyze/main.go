// Package main provides the entry point for the single-match analysis CLI tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/yourusername/value-hunter/internal/config"
	"github.com/yourusername/value-hunter/internal/engine"
	"github.com/yourusername/value-hunter/internal/logger"
	"github.com/yourusername/value-hunter/internal/models"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		team1      = flag.String("team1", "", "First team name (required)")
		team2      = flag.String("team2", "", "Second team name (required)")
		odds1      = flag.Float64("odds1", 0, "Decimal odds for team1 (required)")
		odds2      = flag.Float64("odds2", 0, "Decimal odds for team2 (required)")
		draw       = flag.Float64("draw", 0, "Decimal odds for the draw (omit for two-way markets)")
		form1      = flag.String("form1", "", "Recent form for team1, e.g. WWLWW")
		form2      = flag.String("form2", "", "Recent form for team2, e.g. WLWWL")
		record1    = flag.String("record1", "", "Season record for team1, e.g. 15-5-2")
		record2    = flag.String("record2", "", "Season record for team2")
		h2h        = flag.String("h2h", "", "Head-to-head history")
		home       = flag.String("home", "", "Home team name")
		extra      = flag.String("context", "", "Additional context notes")
		sport      = flag.String("sport", "unknown", "Sport key for the fixture")
		output     = flag.String("output", "pretty", "Output format: pretty or json")
	)
	flag.Parse()

	if *team1 == "" || *team2 == "" || *odds1 == 0 || *odds2 == 0 {
		fmt.Fprintln(os.Stderr, "team1, team2, odds1 and odds2 are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	params, err := engine.FromConfig(&cfg.Engine)
	if err != nil {
		log.WithError(err).Fatal("Invalid engine configuration")
	}
	eng, err := engine.New(params)
	if err != nil {
		log.WithError(err).Fatal("Invalid engine configuration")
	}

	mc := models.MatchContext{
		Team1Name:         *team1,
		Team2Name:         *team2,
		Team1Form:         *form1,
		Team2Form:         *form2,
		Team1Record:       *record1,
		Team2Record:       *record2,
		HeadToHead:        *h2h,
		HomeTeam:          *home,
		AdditionalContext: *extra,
	}

	if err := config.NewValidator().ValidateStruct(&mc); err != nil {
		fmt.Fprintf(os.Stderr, "invalid match input: %v\n", err)
		os.Exit(2)
	}

	var drawOdds *float64
	if *draw > 0 {
		drawOdds = draw
	}

	analysis, err := eng.AnalyzeMatch(mc, *odds1, *odds2, drawOdds)
	if err != nil {
		log.WithError(err).Fatal("Analysis failed")
	}
	analysis.Sport = *sport

	switch *output {
	case "json":
		printJSON(analysis)
	default:
		printPretty(analysis)
	}
}

func printJSON(analysis *models.MatchAnalysis) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode analysis: %v\n", err)
		os.Exit(1)
	}
}

func printPretty(analysis *models.MatchAnalysis) {
	fmt.Printf("%s vs %s\n\n", analysis.Context.Team1Name, analysis.Context.Team2Name)

	fmt.Println("Strength estimate:")
	fmt.Printf("  %s: %.3f\n", analysis.Context.Team1Name, analysis.Strength.Team1Score)
	fmt.Printf("  %s: %.3f\n", analysis.Context.Team2Name, analysis.Strength.Team2Score)
	for _, factor := range analysis.Strength.Factors {
		fmt.Printf("  note: %s\n", factor)
	}
	switch analysis.Strength.Favourite() {
	case 1:
		fmt.Printf("  favourite: %s\n", analysis.Context.Team1Name)
	case 2:
		fmt.Printf("  favourite: %s\n", analysis.Context.Team2Name)
	default:
		fmt.Println("  favourite: even")
	}

	fmt.Println("\nOutcome valuation:")
	for _, outcome := range analysis.Valuation.Outcomes {
		fmt.Printf("  %-5s  odds %.2f  implied %.1f%%  actual %.1f%%  EV %+.1f%%\n",
			outcome.Outcome, outcome.Odds,
			outcome.ImpliedProbability*100, outcome.ActualProbability*100,
			outcome.ExpectedValue*100)
	}

	fmt.Println()
	if analysis.Valuation.HasValueBet() {
		for _, rec := range analysis.Valuation.Recommendations {
			fmt.Printf("Recommendation: bet %s (EV %+.1f%%, suggested stake %.1f%% of bankroll)\n",
				rec.Outcome, rec.ExpectedValue*100, rec.SuggestedStake*100)
		}
	} else {
		fmt.Println("Recommendation: no value bet found")
	}
}
