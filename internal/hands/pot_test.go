package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handWith(seats []string, contrib, collects map[string]int) *Hand {
	h := NewHand(100)
	for _, name := range seats {
		h.Order = append(h.Order, name)
		h.Seats[name] = 10000
	}
	for name, amount := range contrib {
		h.Contrib[name] = amount
	}
	for name, amount := range collects {
		h.Collects[name] = amount
	}
	return h
}

func TestBuildPotsThreeWayAllIn(t *testing.T) {
	h := handWith([]string{"A", "B", "C"},
		map[string]int{"A": 100, "B": 50, "C": 20}, nil)

	BuildPots(h)

	require.Len(t, h.Pots, 3)
	assert.Equal(t, 60, h.Pots[0].Size)
	assert.Equal(t, []string{"A", "B", "C"}, h.Pots[0].Eligible)
	assert.Equal(t, 60, h.Pots[1].Size)
	assert.Equal(t, []string{"A", "B"}, h.Pots[1].Eligible)
	assert.Equal(t, 50, h.Pots[2].Size)
	assert.Equal(t, []string{"A"}, h.Pots[2].Eligible)
}

func TestBuildPotsConservation(t *testing.T) {
	tests := []struct {
		name    string
		contrib map[string]int
	}{
		{"equal stacks", map[string]int{"A": 500, "B": 500, "C": 500}},
		{"staggered all-ins", map[string]int{"A": 100, "B": 50, "C": 20}},
		{"one folder", map[string]int{"A": 1200, "B": 1200, "C": 100}},
		{"single player", map[string]int{"A": 75}},
		{"zero net contribution ignored", map[string]int{"A": 300, "B": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handWith([]string{"A", "B", "C"}, tt.contrib, nil)
			BuildPots(h)
			assert.Equal(t, h.TotalContrib(), h.TotalPots())
		})
	}
}

func TestBuildPotsEqualContributionsCollapse(t *testing.T) {
	h := handWith([]string{"A", "B", "C"},
		map[string]int{"A": 500, "B": 500, "C": 500}, nil)

	BuildPots(h)

	require.Len(t, h.Pots, 1)
	assert.Equal(t, 1500, h.Pots[0].Size)
	assert.Equal(t, []string{"A", "B", "C"}, h.Pots[0].Eligible)
}

func TestAssignWinnersDrainsExclusivePotsFirst(t *testing.T) {
	// A takes the top pot only; B scoops the middle and main pots.
	h := handWith([]string{"A", "B", "C"},
		map[string]int{"A": 100, "B": 50, "C": 20},
		map[string]int{"A": 50, "B": 120})

	BuildPots(h)
	AssignWinners(h)

	assert.Equal(t, []string{"B"}, h.Pots[0].Winners)
	assert.Equal(t, []string{"B"}, h.Pots[1].Winners)
	assert.Equal(t, []string{"A"}, h.Pots[2].Winners)
}

func TestAssignWinnersSplitPot(t *testing.T) {
	h := handWith([]string{"A", "B"},
		map[string]int{"A": 400, "B": 400},
		map[string]int{"A": 400, "B": 400})

	BuildPots(h)
	AssignWinners(h)

	require.Len(t, h.Pots, 1)
	assert.Equal(t, []string{"A", "B"}, h.Pots[0].Winners)
}

func TestAssignWinnersUncontestedFallback(t *testing.T) {
	// No collected line at all; the pot still needs a deterministic winner.
	h := handWith([]string{"zed", "alice"},
		map[string]int{"zed": 60, "alice": 60}, nil)

	BuildPots(h)
	AssignWinners(h)

	require.Len(t, h.Pots, 1)
	assert.Equal(t, []string{"alice"}, h.Pots[0].Winners,
		"fallback winner should be the lexicographically first eligible name")
}

func TestAssignWinnersDeterministic(t *testing.T) {
	build := func() *Hand {
		h := handWith([]string{"A", "B", "C"},
			map[string]int{"A": 100, "B": 50, "C": 20},
			map[string]int{"A": 110, "C": 60})
		BuildPots(h)
		AssignWinners(h)
		return h
	}

	first := build()
	for i := 0; i < 20; i++ {
		again := build()
		for p := range first.Pots {
			assert.Equal(t, first.Pots[p].Winners, again.Pots[p].Winners)
		}
	}
}

func TestAssignWinnersCappedByPotSize(t *testing.T) {
	// Collection exceeding the pot (blinds folded in, say) never
	// over-attributes: the pot caps what a player can take from it.
	h := handWith([]string{"Hero", "Villain"},
		map[string]int{"Hero": 500, "Villain": 500},
		map[string]int{"Hero": 1500})

	BuildPots(h)
	AssignWinners(h)

	require.Len(t, h.Pots, 1)
	assert.Equal(t, 1000, h.Pots[0].Size)
	assert.Equal(t, []string{"Hero"}, h.Pots[0].Winners)
}
