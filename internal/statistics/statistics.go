package statistics

import (
	"fmt"
	"sort"
	"strings"
)

// GameResult represents the outcome of a single Skull game
type GameResult struct {
	Winner  string // Winning seat name
	Actions int    // Total actions applied
	Seed    int64  // RNG seed for this game (for replay)
}

// Statistics aggregates results across a batch of games
type Statistics struct {
	Games        int
	Wins         map[string]int
	TotalActions int
	MinActions   int
	MaxActions   int
}

// New creates an empty Statistics
func New() *Statistics {
	return &Statistics{Wins: make(map[string]int)}
}

// Add incorporates one game result
func (s *Statistics) Add(result GameResult) {
	if s.Wins == nil {
		s.Wins = make(map[string]int)
	}
	s.Games++
	s.Wins[result.Winner]++
	s.TotalActions += result.Actions
	if s.Games == 1 || result.Actions < s.MinActions {
		s.MinActions = result.Actions
	}
	if result.Actions > s.MaxActions {
		s.MaxActions = result.Actions
	}
}

// Merge folds another batch into this one
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Games == 0 {
		return
	}
	if s.Wins == nil {
		s.Wins = make(map[string]int)
	}
	for name, wins := range other.Wins {
		s.Wins[name] += wins
	}
	if s.Games == 0 || other.MinActions < s.MinActions {
		s.MinActions = other.MinActions
	}
	if other.MaxActions > s.MaxActions {
		s.MaxActions = other.MaxActions
	}
	s.Games += other.Games
	s.TotalActions += other.TotalActions
}

// WinRate returns the fraction of games won by the named seat
func (s *Statistics) WinRate(name string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[name]) / float64(s.Games)
}

// MeanActions returns the average game length in actions
func (s *Statistics) MeanActions() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalActions) / float64(s.Games)
}

// Validate performs sanity checks on the accumulated statistics
func (s *Statistics) Validate() error {
	total := 0
	for _, wins := range s.Wins {
		total += wins
	}
	if total != s.Games {
		return fmt.Errorf("win counts sum to %d but %d games recorded", total, s.Games)
	}
	return nil
}

// Summary renders a human-readable report, seats ordered by wins
func (s *Statistics) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games: %d\n", s.Games)
	if s.Games > 0 {
		fmt.Fprintf(&sb, "Actions per game: mean %.1f, min %d, max %d\n",
			s.MeanActions(), s.MinActions, s.MaxActions)
	}

	names := make([]string, 0, len(s.Wins))
	for name := range s.Wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Wins[names[i]] != s.Wins[names[j]] {
			return s.Wins[names[i]] > s.Wins[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-16s %5d wins  %6.2f%%\n", name, s.Wins[name], 100*s.WinRate(name))
	}
	return sb.String()
}
