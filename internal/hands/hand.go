package hands

// Hand is one fully parsed hand record. A Hand and its pots are built
// once per hand and never mutated after winner assignment.
type Hand struct {
	Order    []string       // seat order as printed in the log
	Seats    map[string]int // player name -> starting stack
	Contrib  map[string]int // player name -> net chips committed this hand
	Collects map[string]int // player name -> chips collected from pots
	Pots     []Pot
	BB       int // big blind size for this hand
}

// NewHand creates an empty hand with the given big blind.
func NewHand(bb int) *Hand {
	return &Hand{
		Seats:    make(map[string]int),
		Contrib:  make(map[string]int),
		Collects: make(map[string]int),
		BB:       bb,
	}
}

// Seated reports whether name held a seat this hand.
func (h *Hand) Seated(name string) bool {
	_, ok := h.Seats[name]
	return ok
}

// TotalContrib returns the chips committed across all players.
func (h *Hand) TotalContrib() int {
	total := 0
	for _, amount := range h.Contrib {
		total += amount
	}
	return total
}

// TotalPots returns the chips held across all pots.
func (h *Hand) TotalPots() int {
	total := 0
	for _, pot := range h.Pots {
		total += pot.Size
	}
	return total
}
