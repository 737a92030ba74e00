package balance

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kingrea/drafter/internal/roster"
)

var roles = []string{"Tank", "Healer", "Support", "Carry"}

func randomRoster(r *rand.Rand) []roster.Participant {
	players := make([]roster.Participant, RosterSize)
	for i := range players {
		players[i] = roster.Participant{
			Name:  fmt.Sprintf("p%d", i),
			Score: r.Intn(50),
			Role:  roles[r.Intn(len(roles))],
		}
	}
	return players
}

func uniformRoster() []roster.Participant {
	players := make([]roster.Participant, RosterSize)
	for i := range players {
		players[i] = roster.Participant{Name: fmt.Sprintf("p%d", i), Score: 10, Role: "X"}
	}
	return players
}

// enumerate lists every candidate in the same lexicographic order Partition
// walks, using plain nested loops.
func enumerate(players []roster.Participant) []candidate {
	var out []candidate
	n := len(players)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						picked := map[int]bool{a: true, b: true, c: true, d: true, e: true}
						var teamA, teamB []roster.Participant
						for i, p := range players {
							if picked[i] {
								teamA = append(teamA, p)
							} else {
								teamB = append(teamB, p)
							}
						}
						out = append(out, evaluate(teamA, teamB))
					}
				}
			}
		}
	}
	return out
}

func names(ps []roster.Participant) string {
	return strings.Join(roster.Names(ps), ",")
}

func sortedNames(ps []roster.Participant) []string {
	out := roster.Names(ps)
	sort.Strings(out)
	return out
}

func TestPartitionCompleteAndSized(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		players := randomRoster(r)
		split, err := Partition(players, WithSeed(int64(i)))
		require.NoError(t, err)
		require.Len(t, split.TeamA, TeamSize)
		require.Len(t, split.TeamB, TeamSize)

		union := append(sortedNames(split.TeamA), sortedNames(split.TeamB)...)
		sort.Strings(union)
		require.Equal(t, sortedNames(players), union)

		inA := map[string]bool{}
		for _, p := range split.TeamA {
			inA[p.Name] = true
		}
		for _, p := range split.TeamB {
			require.False(t, inA[p.Name], "player %s on both teams", p.Name)
		}
		require.Equal(t, roster.TotalScore(split.TeamA), split.ScoreA)
		require.Equal(t, roster.TotalScore(split.TeamB), split.ScoreB)
		require.Equal(t, min(roster.DistinctRoles(split.TeamA), roster.DistinctRoles(split.TeamB)), split.RoleBalance)
	}
}

func TestPartitionIsOptimal(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		players := randomRoster(r)
		split, err := Partition(players, WithSeed(r.Int63()))
		require.NoError(t, err)
		all := enumerate(players)
		require.Len(t, all, 252)
		for _, c := range all {
			require.LessOrEqual(t, split.ScoreDiff(), c.scoreDiff)
		}
	}
}

func TestPartitionTieBreakFollowsEnumerationOrder(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 100; i++ {
		players := randomRoster(r)
		split, err := Partition(players, WithOrder())
		require.NoError(t, err)

		all := enumerate(players)
		minDiff := all[0].scoreDiff
		for _, c := range all {
			minDiff = min(minDiff, c.scoreDiff)
		}
		bestBalance := -1
		for _, c := range all {
			if c.scoreDiff == minDiff {
				bestBalance = max(bestBalance, c.roleBalance)
			}
		}
		var want candidate
		for _, c := range all {
			if c.scoreDiff == minDiff && c.roleBalance == bestBalance {
				want = c
				break
			}
		}
		require.Equal(t, names(want.teamA), names(split.TeamA))
		require.Equal(t, names(want.teamB), names(split.TeamB))
		require.Equal(t, bestBalance, split.RoleBalance)
	}
}

func TestPartitionEqualTieKeepsFirstCandidate(t *testing.T) {
	// Every split has diff 0 and role balance 1, so nothing after the first
	// candidate may replace it.
	players := uniformRoster()
	split, err := Partition(players, WithOrder())
	require.NoError(t, err)
	require.Equal(t, "p0,p1,p2,p3,p4", names(split.TeamA))
	require.Equal(t, "p5,p6,p7,p8,p9", names(split.TeamB))
}

func TestPartitionStrictRoleImprovementReplaces(t *testing.T) {
	players := uniformRoster()
	for i := range players {
		if i < TeamSize {
			players[i].Role = "A"
		} else {
			players[i].Role = "B"
		}
	}
	split, err := Partition(players, WithOrder())
	require.NoError(t, err)
	// {p0..p4} has balance 1; {p0,p1,p2,p3,p5} is the first with balance 2
	// and every later balance-2 split must lose to it.
	require.Equal(t, "p0,p1,p2,p3,p5", names(split.TeamA))
	require.Equal(t, "p4,p6,p7,p8,p9", names(split.TeamB))
	require.Equal(t, 2, split.RoleBalance)
	require.Equal(t, 0, split.ScoreDiff())
}

func TestPartitionSmallerDiffBeatsRoleBalance(t *testing.T) {
	// The first candidate {p0..p4} has five roles per side but a diff of 20.
	// A zero diff needs p0 and p5 together, which caps that side at four roles.
	letters := []string{"A", "B", "C", "D", "E"}
	players := make([]roster.Participant, RosterSize)
	for i := range players {
		players[i] = roster.Participant{Name: fmt.Sprintf("p%d", i), Role: letters[i%TeamSize]}
	}
	players[0].Score = 10
	players[5].Score = -10

	first := enumerate(players)[0]
	require.Equal(t, 20, first.scoreDiff)
	require.Equal(t, 5, first.roleBalance)

	split, err := Partition(players, WithOrder())
	require.NoError(t, err)
	require.Equal(t, 0, split.ScoreDiff())
	require.Equal(t, 4, split.RoleBalance)
	require.Equal(t, "p0,p1,p2,p3,p5", names(split.TeamA))
}

func TestPartitionUniformRoster(t *testing.T) {
	split, err := Partition(uniformRoster())
	require.NoError(t, err)
	require.Equal(t, 0, split.ScoreDiff())
	require.Equal(t, 50, split.ScoreA)
	require.Equal(t, 50, split.ScoreB)
	require.Equal(t, 1, split.RoleBalance)
	require.Len(t, split.TeamA, TeamSize)
	require.Len(t, split.TeamB, TeamSize)
}

func TestPartitionRejectsWrongSize(t *testing.T) {
	players := uniformRoster()
	extra := append(uniformRoster(), roster.Participant{Name: "p10", Score: 1, Role: "X"})
	for _, tc := range []struct {
		name    string
		players []roster.Participant
	}{
		{name: "nine", players: players[:9]},
		{name: "eleven", players: extra},
		{name: "empty", players: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			split, err := Partition(tc.players, WithSeed(1))
			require.ErrorIs(t, err, ErrIncompleteSelection)
			var incomplete *IncompleteSelectionError
			require.True(t, errors.As(err, &incomplete))
			require.Equal(t, len(tc.players), incomplete.Count)
			require.Empty(t, split.TeamA)
			require.Empty(t, split.TeamB)
		})
	}
}

func TestPartitionRejectsDuplicateNames(t *testing.T) {
	players := uniformRoster()
	players[9].Name = "p0"
	_, err := Partition(players, WithSeed(1))
	require.ErrorIs(t, err, ErrIncompleteSelection)
	require.ErrorIs(t, err, ErrDuplicateName)
	var incomplete *IncompleteSelectionError
	require.True(t, errors.As(err, &incomplete))
	require.Equal(t, "p0", incomplete.Duplicate)
	require.Equal(t, RosterSize, incomplete.Count)
}

func TestWrongSizeDoesNotMatchDuplicateName(t *testing.T) {
	_, err := Partition(uniformRoster()[:9], WithSeed(1))
	require.ErrorIs(t, err, ErrIncompleteSelection)
	require.NotErrorIs(t, err, ErrDuplicateName)
}

func TestPartitionSameSeedIsReproducible(t *testing.T) {
	players := randomRoster(rand.New(rand.NewSource(3)))
	first, err := Partition(players, WithSeed(42))
	require.NoError(t, err)
	second, err := Partition(players, WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, int64(42), first.Seed)
}

func TestPartitionDoesNotReorderInput(t *testing.T) {
	players := randomRoster(rand.New(rand.NewSource(5)))
	before := names(players)
	_, err := Partition(players, WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, before, names(players))
}

type reverse struct{}

func (reverse) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestPartitionUsesInjectedShuffler(t *testing.T) {
	split, err := Partition(uniformRoster(), WithShuffler(reverse{}))
	require.NoError(t, err)
	require.Equal(t, "p9,p8,p7,p6,p5", names(split.TeamA))
	require.Equal(t, int64(0), split.Seed)
}

func TestForEachSplitVisitsEverySubsetOnce(t *testing.T) {
	seen := map[string]bool{}
	forEachSplit(uniformRoster(), func(teamA, teamB []roster.Participant) {
		require.Len(t, teamA, TeamSize)
		require.Len(t, teamB, TeamSize)
		key := names(teamA)
		require.False(t, seen[key], "subset %s visited twice", key)
		seen[key] = true
	})
	require.Len(t, seen, 252)
}

func TestPartitionConcurrentCalls(t *testing.T) {
	players := randomRoster(rand.New(rand.NewSource(8)))
	want, err := Partition(players, WithSeed(8))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]TeamSplit, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Partition(players, WithSeed(8))
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
