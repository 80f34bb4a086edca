package hands

import "regexp"

// handStartPattern matches the marker line that begins a hand record.
var handStartPattern = regexp.MustCompile(`^PokerStars (?:Hand|Game) #\d+`)

// Range delimits the lines belonging to a single hand. End is
// exclusive and runs to the line before the next marker or EOF.
type Range struct {
	Start int
	End   int
}

// Split finds every hand-start marker in lines and returns the line
// range of each hand. A file with no markers yields no ranges.
func Split(lines []string) []Range {
	var ranges []Range
	for i, line := range lines {
		if !handStartPattern.MatchString(line) {
			continue
		}
		if n := len(ranges); n > 0 {
			ranges[n-1].End = i
		}
		ranges = append(ranges, Range{Start: i, End: len(lines)})
	}
	return ranges
}
