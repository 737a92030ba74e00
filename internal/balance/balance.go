// Package balance splits ten players into two five-player teams.
//
// Partition tries every way of choosing five of the ten players (252
// candidates) and keeps the one with the smallest score difference. Among
// candidates with the same difference, a later one only wins if it has a
// strictly better role balance, so the earliest candidate is kept on an exact
// tie. The roster is shuffled first; the shuffle decides enumeration order and
// therefore which of several equally good splits comes back.
package balance

import (
	"math"
	"slices"

	"github.com/kingrea/drafter/internal/roster"
)

const (
	// TeamSize is the number of players on each team.
	TeamSize = 5
	// RosterSize is the number of players Partition accepts.
	RosterSize = 2 * TeamSize
)

// TeamSplit is the chosen partition of a roster.
type TeamSplit struct {
	TeamA  []roster.Participant
	TeamB  []roster.Participant
	ScoreA int
	ScoreB int
	// RoleBalance is the smaller of the two teams' distinct role counts.
	RoleBalance int
	// Seed is the math/rand seed used for the shuffle. Zero when a custom
	// Shuffler was supplied.
	Seed int64
}

// ScoreDiff is the absolute difference between the team totals.
func (s TeamSplit) ScoreDiff() int {
	return absInt(s.ScoreA - s.ScoreB)
}

type candidate struct {
	teamA       []roster.Participant
	teamB       []roster.Participant
	scoreA      int
	scoreB      int
	scoreDiff   int
	roleBalance int
}

// Partition returns the best 5v5 split of players. It fails with an
// *IncompleteSelectionError unless exactly RosterSize players with distinct
// names are given.
func Partition(players []roster.Participant, opts ...Option) (TeamSplit, error) {
	if len(players) != RosterSize {
		return TeamSplit{}, &IncompleteSelectionError{Count: len(players)}
	}
	if dups := roster.DuplicateNames(players); len(dups) > 0 {
		return TeamSplit{}, &IncompleteSelectionError{Count: len(players), Duplicate: dups[0]}
	}

	shuffler, seed := resolveOptions(opts)
	order := slices.Clone(players)
	shuffler.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	best := candidate{scoreDiff: math.MaxInt, roleBalance: -1}
	forEachSplit(order, func(teamA, teamB []roster.Participant) {
		c := evaluate(teamA, teamB)
		switch {
		case c.scoreDiff < best.scoreDiff:
			best = c
		case c.scoreDiff == best.scoreDiff && c.roleBalance > best.roleBalance:
			best = c
		}
	})

	return TeamSplit{
		TeamA:       best.teamA,
		TeamB:       best.teamB,
		ScoreA:      best.scoreA,
		ScoreB:      best.scoreB,
		RoleBalance: best.roleBalance,
		Seed:        seed,
	}, nil
}

func evaluate(teamA, teamB []roster.Participant) candidate {
	scoreA := roster.TotalScore(teamA)
	scoreB := roster.TotalScore(teamB)
	return candidate{
		teamA:       teamA,
		teamB:       teamB,
		scoreA:      scoreA,
		scoreB:      scoreB,
		scoreDiff:   absInt(scoreA - scoreB),
		roleBalance: min(roster.DistinctRoles(teamA), roster.DistinctRoles(teamB)),
	}
}

// forEachSplit calls fn for every TeamSize-subset of players in lexicographic
// index order, with the complement (in original order) as the second team.
// The slices passed to fn are freshly allocated.
func forEachSplit(players []roster.Participant, fn func(teamA, teamB []roster.Participant)) {
	n := len(players)
	idx := make([]int, TeamSize)
	for i := range idx {
		idx[i] = i
	}
	for {
		inA := make([]bool, n)
		teamA := make([]roster.Participant, 0, TeamSize)
		for _, i := range idx {
			inA[i] = true
			teamA = append(teamA, players[i])
		}
		teamB := make([]roster.Participant, 0, n-TeamSize)
		for i, p := range players {
			if !inA[i] {
				teamB = append(teamB, p)
			}
		}
		fn(teamA, teamB)

		// Advance to the next combination: find the rightmost index that can
		// still move right, bump it, and reset everything after it.
		pos := TeamSize - 1
		for pos >= 0 && idx[pos] == n-TeamSize+pos {
			pos--
		}
		if pos < 0 {
			return
		}
		idx[pos]++
		for j := pos + 1; j < TeamSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
