// Package selection tracks which players from the pool are picked for the
// next draft. It enforces the ten-player limit and only calls the balancer
// once exactly ten are picked.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/roster"
)

// Limit is the number of players a draft needs.
const Limit = balance.RosterSize

var (
	// ErrLimitReached is returned when adding would exceed Limit.
	ErrLimitReached = errors.New("limit reached")
	// ErrUnknownParticipant is returned when a name is not in the pool.
	ErrUnknownParticipant = errors.New("unknown participant")
)

// Selection is the working set of picked players. It is not safe for
// concurrent use; the TUI owns one per session.
type Selection struct {
	pool   []roster.Participant
	picked []string
}

// New starts an empty selection over pool.
func New(pool []roster.Participant) *Selection {
	return &Selection{pool: slices.Clone(pool)}
}

// Pool returns the players available for selection.
func (s *Selection) Pool() []roster.Participant {
	return slices.Clone(s.pool)
}

// Toggle removes name if it is picked and adds it otherwise. It reports
// whether the player ended up picked.
func (s *Selection) Toggle(name string) (bool, error) {
	if _, ok := roster.Find(s.pool, name); !ok {
		return false, fmt.Errorf("selection: %w: %s", ErrUnknownParticipant, name)
	}
	if idx := slices.Index(s.picked, name); idx >= 0 {
		s.picked = slices.Delete(s.picked, idx, idx+1)
		return false, nil
	}
	if len(s.picked) >= Limit {
		return false, fmt.Errorf("selection: %w: only %d players can be selected", ErrLimitReached, Limit)
	}
	s.picked = append(s.picked, name)
	return true, nil
}

// IsSelected reports whether name is picked.
func (s *Selection) IsSelected(name string) bool {
	return slices.Contains(s.picked, name)
}

// Selected returns the picked players in the order they were picked.
func (s *Selection) Selected() []roster.Participant {
	out := make([]roster.Participant, 0, len(s.picked))
	for _, name := range s.picked {
		if p, ok := roster.Find(s.pool, name); ok {
			out = append(out, p)
		}
	}
	return out
}

// Count is the number of picked players.
func (s *Selection) Count() int {
	return len(s.picked)
}

// Remaining is how many more players must be picked before drafting.
func (s *Selection) Remaining() int {
	return Limit - len(s.picked)
}

// Ready reports whether exactly Limit players are picked.
func (s *Selection) Ready() bool {
	return len(s.picked) == Limit
}

// Clear drops every pick.
func (s *Selection) Clear() {
	s.picked = nil
}

// Draft partitions the picked players. With fewer than Limit picks it returns
// a *balance.IncompleteSelectionError without invoking the balancer.
func (s *Selection) Draft(opts ...balance.Option) (balance.TeamSplit, error) {
	if !s.Ready() {
		return balance.TeamSplit{}, &balance.IncompleteSelectionError{Count: len(s.picked)}
	}
	return balance.Partition(s.Selected(), opts...)
}
