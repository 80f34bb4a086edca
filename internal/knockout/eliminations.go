// Package knockout decides which players busted out between hands and
// whether the tracked hero gets credit for each bust.
package knockout

import "github.com/lox/knockouts/internal/hands"

// Eliminated returns the seats of cur that are gone by the next hand,
// in seat order. For the final hand of a session next is nil and a
// seat that collected nothing is treated as a bust at showdown. The
// log format never flags bust-outs explicitly, so the final-hand case
// is a heuristic: a player who folded the last hand and won nothing is
// indistinguishable from a genuine bust.
func Eliminated(cur, next *hands.Hand) []string {
	var out []string
	for _, name := range cur.Order {
		if next != nil {
			if !next.Seated(name) {
				out = append(out, name)
			}
		} else if cur.Collects[name] == 0 {
			out = append(out, name)
		}
	}
	return out
}
