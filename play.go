package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/setgame/assets"
	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/game"
	"github.com/robalobadob/setgame/internal/session"
)

// player runs the interactive loop for one session.
type player struct {
	s       *session.Session
	in      *bufio.Scanner
	out     io.Writer
	newRNG  func() cards.RNG
	noColor bool
}

func newPlayer(s *session.Session, in io.Reader, out io.Writer, newRNG func() cards.RNG, noColor bool) *player {
	return &player{s: s, in: bufio.NewScanner(in), out: out, newRNG: newRNG, noColor: noColor}
}

// run reads commands until quit or end of input.
func (p *player) run() error {
	p.show()
	for {
		fmt.Fprint(p.out, "> ")
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return p.in.Err()
		}
		// slot labels are case sensitive, command names are not
		fields := strings.Fields(p.in.Text())
		if len(fields) == 0 {
			continue
		}
		quit, err := p.exec(strings.ToLower(fields[0]), fields[1:])
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// exec applies one command. Errors are user mistakes and are only printed.
func (p *player) exec(cmd string, args []string) (quit bool, err error) {
	switch cmd {
	case "q", "quit", "exit":
		fmt.Fprintf(p.out, "final score: %d\n", p.s.Score)
		return true, nil
	case "h", "help", "?":
		lines, err := assets.HelpLines()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(p.out, strings.Join(lines, "\n"))
		return false, nil
	case "d", "deal":
		if _, err := p.s.Deal(); err != nil {
			if !errors.Is(err, game.ErrInsufficientCards) {
				return false, err
			}
			log.Debug().Err(err).Str("session", p.s.ID).Msg("short deal")
			fmt.Fprintln(p.out, "The deck is empty.")
		}
	case "s", "select":
		if err := p.selectSlots(args); err != nil {
			return false, err
		}
	case "hint":
		if _, ok := p.s.Hint(); !ok {
			fmt.Fprintln(p.out, "No sets on the table.")
			return false, nil
		}
		fmt.Fprintf(p.out, "Try %s.\n", strings.Join(slotsOf(p.s, p.s.Hinted), " "))
	case "shuffle":
		p.s.Shuffle()
	case "a", "auto":
		out, err := p.s.AutoplayStep()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(p.out, "auto: %s\n", out)
	case "r", "restart", "new":
		p.s.Restart(p.newRNG())
		fmt.Fprintln(p.out, "New game.")
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	p.show()
	return false, nil
}

func (p *player) selectSlots(args []string) error {
	slots, err := parseSlots(args)
	if err != nil {
		return err
	}
	if len(slots) != 3 {
		return errors.New("name exactly 3 cards")
	}
	open := p.s.Table.OpenCards()
	picked := make([]cards.Card, 0, 3)
	for _, i := range slots {
		if i < 0 || i >= len(open) {
			return fmt.Errorf("no card in slot %s", slotLabel(i))
		}
		if containsCard(picked, open[i]) {
			return errors.New("pick 3 different cards")
		}
		picked = append(picked, open[i])
	}

	p.s.Selected = nil
	var out session.Outcome
	for _, c := range picked {
		if out, err = p.s.Select(c); err != nil {
			return err
		}
	}
	switch out {
	case session.OutcomeMatched:
		fmt.Fprintln(p.out, "✔ set!")
	case session.OutcomeMismatched:
		fmt.Fprintln(p.out, "✘ not a set")
	}
	return nil
}

func (p *player) show() {
	fmt.Fprintln(p.out)
	renderTable(p.out, p.s, p.noColor)
	renderStatus(p.out, p.s)
	if p.s.Table.Over() {
		fmt.Fprintln(p.out, "No more sets. Type restart to play again.")
	}
}
