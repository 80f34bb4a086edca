package hands

import "sort"

// Pot is one level of the side-pot ladder.
type Pot struct {
	Size     int
	Level    int      // cumulative contribution level this pot closes at
	Eligible []string // players who contributed at least Level, in seat order
	Winners  []string // players who took chips from this pot
}

// EligibleFor reports whether name can contest this pot.
func (p *Pot) EligibleFor(name string) bool {
	for _, n := range p.Eligible {
		if n == name {
			return true
		}
	}
	return false
}

// WonBy reports whether name took chips from this pot.
func (p *Pot) WonBy(name string) bool {
	for _, n := range p.Winners {
		if n == name {
			return true
		}
	}
	return false
}

// BuildPots derives the side-pot ladder from the hand's contributions.
// Each distinct positive contribution amount closes one pot: players
// who went all-in for less only contest pots up to their own level,
// while deeper players keep contesting higher levels among themselves.
func BuildPots(h *Hand) {
	levels := contributionLevels(h)
	players := contributors(h)

	h.Pots = h.Pots[:0]
	prev := 0
	for _, level := range levels {
		var eligible []string
		for _, name := range players {
			if h.Contrib[name] >= level {
				eligible = append(eligible, name)
			}
		}
		h.Pots = append(h.Pots, Pot{
			Size:     (level - prev) * len(eligible),
			Level:    level,
			Eligible: eligible,
		})
		prev = level
	}
}

// AssignWinners drains each player's collected total against the pots
// they could have won, most exclusive pot first. Settling the smallest
// eligible sets first keeps multi-pot attribution unambiguous when a
// player's collection spans several pots.
func AssignWinners(h *Hand) {
	order := make([]int, len(h.Pots))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(h.Pots[order[a]].Eligible) < len(h.Pots[order[b]].Eligible)
	})

	remaining := make(map[string]int, len(h.Collects))
	for name, amount := range h.Collects {
		remaining[name] = amount
	}

	for _, pi := range order {
		pot := &h.Pots[pi]
		left := pot.Size
		for _, name := range pot.Eligible {
			if left == 0 {
				break
			}
			take := remaining[name]
			if take > left {
				take = left
			}
			if take > 0 {
				pot.Winners = append(pot.Winners, name)
				remaining[name] -= take
				left -= take
			}
		}
		if left > 0 && pot.Size > 0 && len(pot.Winners) == 0 && len(pot.Eligible) > 0 {
			// Uncontested pots carry no "collected" line in some logs.
			// Fall back to a deterministic winner so every pot settles.
			pot.Winners = []string{firstByName(pot.Eligible)}
		}
	}
}

// contributionLevels returns the sorted distinct positive amounts
// players committed this hand.
func contributionLevels(h *Hand) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, amount := range h.Contrib {
		if amount > 0 && !seen[amount] {
			seen[amount] = true
			levels = append(levels, amount)
		}
	}
	sort.Ints(levels)
	return levels
}

// contributors returns every player with a contribution entry in a
// deterministic order: seat order first, then any names that only
// appear in the action block, sorted.
func contributors(h *Hand) []string {
	players := make([]string, 0, len(h.Contrib))
	for _, name := range h.Order {
		if _, ok := h.Contrib[name]; ok {
			players = append(players, name)
		}
	}
	var extra []string
	for name := range h.Contrib {
		if !h.Seated(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(players, extra...)
}

func firstByName(names []string) string {
	first := names[0]
	for _, name := range names[1:] {
		if name < first {
			first = name
		}
	}
	return first
}
