package knockout

import (
	"github.com/charmbracelet/log"

	"github.com/lox/knockouts/internal/hands"
)

// Attributor decides how many knockouts the hero is credited for in a
// hand. Diagnostics is an explicit setting rather than process-wide
// state so concurrent sessions can differ.
type Attributor struct {
	Hero        string
	MinBigBlind int
	Diagnostics bool
	Logger      *log.Logger
}

// Credit records one knockout credited to the hero.
type Credit struct {
	Player   string `json:"player"`
	PotLevel int    `json:"pot_level"`
	PotSize  int    `json:"pot_size"`
}

// Attribute returns a credit for each eliminated player the hero
// knocked out this hand. The hero must have won the most exclusive pot
// the eliminated player contested, and must have covered them: hero's
// starting stack at least the eliminated player's starting stack.
// Hands below the big-blind filter, hands the hero sat out, and
// eliminated players missing from the seat list contribute nothing.
func (a *Attributor) Attribute(h *hands.Hand, eliminated []string) []Credit {
	if h.BB < a.MinBigBlind || !h.Seated(a.Hero) || len(eliminated) == 0 {
		return nil
	}

	heroStack := h.Seats[a.Hero]
	var credits []Credit
	for _, name := range eliminated {
		if name == a.Hero {
			continue
		}
		stack, ok := h.Seats[name]
		if !ok {
			continue
		}
		pot := mostExclusivePot(h, name)
		if pot == nil {
			continue
		}
		if !pot.WonBy(a.Hero) || heroStack < stack {
			continue
		}
		credits = append(credits, Credit{Player: name, PotLevel: pot.Level, PotSize: pot.Size})
		if a.Diagnostics && a.Logger != nil {
			a.Logger.Info("knockout credited",
				"player", name,
				"player_stack", stack,
				"hero_stack", heroStack,
				"pot_level", pot.Level,
				"pot_size", pot.Size)
		}
	}
	return credits
}

// mostExclusivePot picks, among the pots name was eligible for, the
// one with the fewest eligible players. That is the side pot nearest
// the player's own stack level, mirroring the order winners were
// assigned in, so a bust is matched to the pot it was actually decided
// by rather than a larger pot the winner also happened to take.
func mostExclusivePot(h *hands.Hand, name string) *hands.Pot {
	var best *hands.Pot
	for i := range h.Pots {
		pot := &h.Pots[i]
		if !pot.EligibleFor(name) {
			continue
		}
		if best == nil || len(pot.Eligible) < len(best.Eligible) {
			best = pot
		}
	}
	return best
}
