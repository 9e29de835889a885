package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wsxiaoys/terminal/color"

	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/session"
)

var (
	// indexed by Color-1
	colors = []string{"@r", "@g", "@m"}
	// indexed by Shape-1, then Style-1 (open, striped, solid)
	shapes = [][]string{
		{"□", "◨", "■"},
		{"○", "◑", "●"},
		{"△", "◮", "▲"},
	}
)

const numCols = 3

// slotLabel names a table slot: a-z, then A-Z, then plain numbers.
func slotLabel(i int) string {
	switch {
	case i < 26:
		return string(rune('a' + i))
	case i < 52:
		return string(rune('A' + i - 26))
	default:
		return strconv.Itoa(i)
	}
}

// parseSlots turns "a b c", "abc" or "a 53 c" into slot indexes.
func parseSlots(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			out = append(out, n)
			continue
		}
		for _, r := range arg {
			switch {
			case r >= 'a' && r <= 'z':
				out = append(out, int(r-'a'))
			case r >= 'A' && r <= 'Z':
				out = append(out, int(r-'A')+26)
			default:
				return nil, fmt.Errorf("bad slot %q", string(r))
			}
		}
	}
	return out, nil
}

// cardText renders one card as count glyphs in the card's color.
func cardText(c cards.Card, noColor bool) string {
	glyph := shapes[c.Shape-1][c.Style-1]
	body := strings.Repeat(glyph, int(c.Count))
	pad := strings.Repeat(" ", int(cards.MaxValue-c.Count))
	if noColor {
		return fmt.Sprintf("%s%s %d", body, pad, c.Color)
	}
	return color.Sprint(colors[c.Color-1] + body + "@|" + pad)
}

// renderTable prints the open cards in columns with their slot labels,
// marking selected (*) and hinted (?) cards.
func renderTable(w io.Writer, s *session.Session, noColor bool) {
	open := s.Table.OpenCards()
	for i, c := range open {
		mark := " "
		switch {
		case containsCard(s.Selected, c):
			mark = "*"
		case containsCard(s.Hinted, c):
			mark = "?"
		}
		fmt.Fprintf(w, "%3s.%s[%s]", slotLabel(i), mark, cardText(c, noColor))
		if (i+1)%numCols == 0 || i == len(open)-1 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, "  ")
		}
	}
}

// renderStatus prints the one-line dashboard under the table.
func renderStatus(w io.Writer, s *session.Session) {
	fmt.Fprintf(w, "\n[score: %d, sets found: %02d, deck: %02d, sets on table: %d]\n",
		s.Score, s.Found, s.Table.RemainingDeckCount(), len(s.Table.AllMatches()))
}

func slotsOf(s *session.Session, cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		if i := s.Table.IndexOf(c); i >= 0 {
			out = append(out, slotLabel(i))
		}
	}
	return out
}

func containsCard(cs []cards.Card, c cards.Card) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
