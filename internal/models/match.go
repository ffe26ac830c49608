package models

import "strings"

// MatchContext holds the qualitative facts known about a fixture before
// strength estimation. Only the two team names are required; every other
// field contributes when present and is skipped when absent.
type MatchContext struct {
	Team1Name         string `db:"team1_name" json:"team1_name" validate:"required"`
	Team2Name         string `db:"team2_name" json:"team2_name" validate:"required"`
	Team1Form         string `db:"team1_form" json:"team1_form,omitempty" validate:"omitempty,formstring"`
	Team2Form         string `db:"team2_form" json:"team2_form,omitempty" validate:"omitempty,formstring"`
	Team1Record       string `db:"team1_record" json:"team1_record,omitempty"`
	Team2Record       string `db:"team2_record" json:"team2_record,omitempty"`
	HeadToHead        string `db:"head_to_head" json:"head_to_head,omitempty"`
	HomeTeam          string `db:"home_team" json:"home_team,omitempty"`
	AdditionalContext string `db:"additional_context" json:"additional_context,omitempty"`
}

// HasTeamNames reports whether both required team names are non-blank.
func (m *MatchContext) HasTeamNames() bool {
	return strings.TrimSpace(m.Team1Name) != "" && strings.TrimSpace(m.Team2Name) != ""
}

// HomeSide returns which team the home advantage applies to: 1, 2, or 0
// when the home team is unset or matches neither name.
func (m *MatchContext) HomeSide() int {
	home := strings.TrimSpace(m.HomeTeam)
	if home == "" {
		return 0
	}
	switch {
	case strings.EqualFold(home, m.Team1Name):
		return 1
	case strings.EqualFold(home, m.Team2Name):
		return 2
	default:
		return 0
	}
}
