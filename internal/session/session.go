// internal/session/session.go
//
// Player-facing play loop on top of a game.Table.
// Responsibilities:
//   - Track the player's selection and evaluate it once three cards are picked.
//   - Apply score deltas (match, mismatch, deselect, hint, unnecessary deal).
//   - Provide hint, shuffle, restart and a single autoplay step.
//
// A Session is plain state driven by one caller at a time; it performs no I/O
// beyond debug logging.

package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/game"
)

// Score deltas applied by the session.
const (
	ScoreMatch         = 3
	ScoreMismatch      = -2
	ScoreDeselect      = -1
	ScoreHint          = -1
	ScoreDealWithMatch = -3
)

// Outcome describes what a command did.
type Outcome string

const (
	OutcomeSelected   Outcome = "selected"
	OutcomeDeselected Outcome = "deselected"
	OutcomeMatched    Outcome = "matched"
	OutcomeMismatched Outcome = "mismatched"
	OutcomeDealt      Outcome = "dealt"
	OutcomeHinted     Outcome = "hinted"
	OutcomeShuffled   Outcome = "shuffled"
	OutcomeOver       Outcome = "over"
)

// Session is one player's game: the table plus selection, hint and score.
type Session struct {
	ID       string
	Table    *game.Table
	Score    int
	Found    int          // sets taken off the table
	Selected []cards.Card // at most two between commands
	Hinted   []cards.Card
}

// New starts a session with a freshly dealt table.
func New(id string, rng cards.RNG) *Session {
	s := &Session{ID: id}
	s.Restart(rng)
	return s
}

// Restart discards the table and all player state and deals a new game.
func (s *Session) Restart(rng cards.RNG) {
	s.Table = game.New(rng)
	s.Score = 0
	s.Found = 0
	s.Selected = nil
	s.Hinted = nil
	log.Debug().Str("session", s.ID).Int("matches", len(s.Table.AllMatches())).Msg("new table")
}

// Select toggles c in the selection. Picking a third card evaluates the
// three: a set is replaced on the table, anything else clears the selection.
func (s *Session) Select(c cards.Card) (Outcome, error) {
	if !s.Table.Contains(c) {
		return "", fmt.Errorf("select %v: not on the table: %w", c, game.ErrInvalidArgument)
	}
	if i := indexOf(s.Selected, c); i >= 0 {
		s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
		s.Score += ScoreDeselect
		return OutcomeDeselected, nil
	}
	if len(s.Selected) < 2 {
		s.Selected = append(s.Selected, c)
		return OutcomeSelected, nil
	}

	set := cards.Triplet{s.Selected[0], s.Selected[1], c}
	s.Selected = nil
	if !set.IsMatch() {
		s.Score += ScoreMismatch
		return OutcomeMismatched, nil
	}
	if err := s.take(set); err != nil {
		return "", err
	}
	s.Score += ScoreMatch
	return OutcomeMatched, nil
}

// take replaces a found set on the table.
func (s *Session) take(set cards.Triplet) error {
	_, err := s.Table.DealReplacing(set)
	if err != nil && !errors.Is(err, game.ErrInsufficientCards) {
		return err
	}
	s.Found++
	s.Hinted = nil
	log.Debug().Str("session", s.ID).Stringer("set", tripletStringer(set)).
		Int("deck", s.Table.RemainingDeckCount()).Msg("set found")
	return nil
}

// Deal asks for three more cards. Dealing while a set is on the table costs
// ScoreDealWithMatch. The returned error is ErrInsufficientCards when the
// deck could not supply a full deal.
func (s *Session) Deal() (Outcome, error) {
	if len(s.Table.AllMatches()) > 0 {
		s.Score += ScoreDealWithMatch
	}
	_, err := s.Table.DealAdditional()
	return OutcomeDealt, err
}

// Hint marks one available set. With no set on the table nothing is marked
// and no score is charged.
func (s *Session) Hint() (cards.Triplet, bool) {
	set, ok := s.Table.Hint()
	if !ok {
		return cards.Triplet{}, false
	}
	s.Hinted = set[:]
	s.Score += ScoreHint
	return set, true
}

// Shuffle reorders the open cards.
func (s *Session) Shuffle() Outcome {
	s.Table.Shuffle()
	return OutcomeShuffled
}

// AutoplayStep makes one move for the player: take the hinted set if there
// is one, otherwise deal more cards. Returns OutcomeOver when neither is possible.
// Autoplay moves are not scored.
func (s *Session) AutoplayStep() (Outcome, error) {
	if s.Table.Over() {
		return OutcomeOver, nil
	}
	s.Selected = nil
	if set, ok := s.Table.Hint(); ok {
		if err := s.take(set); err != nil {
			return "", err
		}
		return OutcomeMatched, nil
	}
	if _, err := s.Table.DealAdditional(); err != nil && !errors.Is(err, game.ErrInsufficientCards) {
		return "", err
	}
	return OutcomeDealt, nil
}

// Autoplay runs AutoplayStep until the game is over or maxSteps is reached.
// Returns the number of steps taken.
func (s *Session) Autoplay(maxSteps int) (int, error) {
	for i := 0; i < maxSteps; i++ {
		out, err := s.AutoplayStep()
		if err != nil {
			return i, err
		}
		if out == OutcomeOver {
			return i, nil
		}
	}
	return maxSteps, nil
}

func indexOf(cs []cards.Card, c cards.Card) int {
	for i, x := range cs {
		if x == c {
			return i
		}
	}
	return -1
}

type tripletStringer cards.Triplet

func (t tripletStringer) String() string {
	return fmt.Sprintf("%v %v %v", t[0], t[1], t[2])
}
