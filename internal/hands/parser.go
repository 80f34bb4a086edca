package hands

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const holeCardsMarker = "*** HOLE CARDS ***"

var (
	// Header blinds, e.g. "Level X (50/100)" or "(25/50)"
	blindsPattern = regexp.MustCompile(`\((\d[\d,]*)/(\d[\d,]*)\)`)

	// "Seat 3: villain22 (1200 in chips)"
	seatPattern = regexp.MustCompile(`^Seat \d+: (.+) \((\d[\d,]*) in chips\)`)

	// "Uncalled bet (300) returned to Hero"
	uncalledPattern = regexp.MustCompile(`^Uncalled bet \((\d[\d,]*)\) returned to (.+)$`)

	// "Hero collected 2500 from pot", also main/side pot variants
	collectPattern = regexp.MustCompile(`^(.+?) collected (\d[\d,]*) from (?:main pot|side pot(?:-\d+)?|pot)`)

	// "villain22: raises 1000 to 1200" (optionally "and is all-in")
	raisePattern = regexp.MustCompile(`^(.+?): raises \d[\d,]* to (\d[\d,]*)`)

	// Posts, bets and calls all add the stated amount outright.
	postPattern = regexp.MustCompile(`^(.+?): (?:posts (?:small blind|big blind|the ante)|bets|calls) (\d[\d,]*)`)
)

// Parser turns a hand's line range into a Hand. The zero value is
// usable; DefaultBB substitutes for headers with no blind level.
type Parser struct {
	DefaultBB int
	Logger    *log.Logger
}

// ParseHand parses the hand whose marker line sits at lines[start].
// It returns the hand and the scan position after the hand's action
// block, past any trailing blank lines. Parsing never fails: missing
// or malformed fields degrade to zero values.
func (p *Parser) ParseHand(lines []string, start int) (*Hand, int) {
	hand := NewHand(p.DefaultBB)
	if start < len(lines) {
		if m := blindsPattern.FindStringSubmatch(lines[start]); m != nil {
			if bb := parseChips(m[2]); bb > 0 {
				hand.BB = bb
			}
		}
	}

	i := start + 1
	inActions := false
	for ; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if line == "" {
			break
		}
		if i > start && handStartPattern.MatchString(line) {
			// Missing blank line before the next hand; stop here.
			return hand, i
		}
		if strings.HasPrefix(line, holeCardsMarker) {
			inActions = true
			continue
		}
		if !inActions {
			if m := seatPattern.FindStringSubmatch(line); m != nil {
				p.addSeat(hand, strings.TrimSpace(m[1]), parseChips(m[2]))
				continue
			}
		}
		p.parseAction(hand, line)
	}

	for i < len(lines) && strings.TrimRight(lines[i], "\r") == "" {
		i++
	}
	return hand, i
}

// addSeat records a starting stack. Two seats sharing one display name
// would silently merge their chip totals, so the duplicate is dropped
// with a warning instead.
func (p *Parser) addSeat(hand *Hand, name string, chips int) {
	if name == "" {
		return
	}
	if hand.Seated(name) {
		if p.Logger != nil {
			p.Logger.Warn("duplicate seat name in hand, keeping first", "name", name)
		}
		return
	}
	hand.Order = append(hand.Order, name)
	hand.Seats[name] = chips
}

func (p *Parser) parseAction(hand *Hand, line string) {
	switch {
	case strings.HasPrefix(line, "Uncalled bet"):
		if m := uncalledPattern.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[2])
			hand.Contrib[name] -= parseChips(m[1])
		}
	case collectPattern.MatchString(line):
		m := collectPattern.FindStringSubmatch(line)
		name := strings.TrimSpace(m[1])
		hand.Collects[name] += parseChips(m[2])
	case raisePattern.MatchString(line):
		m := raisePattern.FindStringSubmatch(line)
		name := strings.TrimSpace(m[1])
		// Raises are logged as a new committed total; only the delta
		// over what the player already has in is fresh contribution.
		if delta := parseChips(m[2]) - hand.Contrib[name]; delta > 0 {
			hand.Contrib[name] += delta
		}
	case postPattern.MatchString(line):
		m := postPattern.FindStringSubmatch(line)
		name := strings.TrimSpace(m[1])
		hand.Contrib[name] += parseChips(m[2])
	}
}

// parseChips parses a chip amount, stripping thousands separators.
// Malformed amounts parse to zero rather than failing the hand.
func parseChips(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
