package game_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/setgame/internal/cards"
	"github.com/robalobadob/setgame/internal/game"
)

// normalize orders a triplet's cards by key so sets compare regardless of order.
func normalize(t cards.Triplet) [3]int {
	k := [3]int{t[0].Key(), t[1].Key(), t[2].Key()}
	sort.Ints(k[:])
	return k
}

// bruteForce recomputes every set on the table independently of the engine.
func bruteForce(open []cards.Card) map[[3]int]bool {
	out := map[[3]int]bool{}
	for i := range open {
		for j := i + 1; j < len(open); j++ {
			for k := j + 1; k < len(open); k++ {
				if cards.IsMatch(open[i], open[j], open[k]) {
					out[normalize(cards.Triplet{open[i], open[j], open[k]})] = true
				}
			}
		}
	}
	return out
}

func requireFresh(t *testing.T, tbl *game.Table) {
	t.Helper()
	got := map[[3]int]bool{}
	for _, m := range tbl.AllMatches() {
		key := normalize(m)
		require.False(t, got[key], "set %v listed twice", m)
		got[key] = true
	}
	require.Equal(t, bruteForce(tbl.OpenCards()), got)
}

func requireNoDuplicates(t *testing.T, open []cards.Card) {
	t.Helper()
	seen := map[cards.Card]bool{}
	for _, c := range open {
		require.False(t, seen[c], "duplicate open card %v", c)
		seen[c] = true
	}
}

// stacked returns a table whose first three open cards form a set,
// with a draw pool of the given size.
func stacked(poolSize int) (*game.Table, []cards.Card, []cards.Card) {
	full := cards.NewFullDeck()
	open := full[:game.InitialSize]
	pool := full[game.InitialSize : game.InitialSize+poolSize]
	return game.NewStacked(cards.NewRNG(1), open, pool), open, pool
}

func TestNew_InitialDeal(t *testing.T) {
	tbl := game.New(cards.NewRNG(11))

	assert.Equal(t, game.InitialSize, tbl.Size())
	assert.Equal(t, cards.NumCards-game.InitialSize, tbl.RemainingDeckCount())
	requireNoDuplicates(t, tbl.OpenCards())
	requireFresh(t, tbl)
}

func TestNew_SameSeedSameTable(t *testing.T) {
	a := game.New(cards.NewRNG(99))
	b := game.New(cards.NewRNG(99))
	assert.Equal(t, a.OpenCards(), b.OpenCards())
	assert.Equal(t, a.AllMatches(), b.AllMatches())
}

func TestDealAdditional_Full(t *testing.T) {
	tbl := game.New(cards.NewRNG(5))

	ok, err := tbl.DealAdditional()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15, tbl.Size())
	assert.Equal(t, 66, tbl.RemainingDeckCount())
	requireNoDuplicates(t, tbl.OpenCards())
	requireFresh(t, tbl)
}

func TestDealAdditional_RunsDry(t *testing.T) {
	tbl, _, _ := stacked(7)

	for _, wantSize := range []int{15, 18} {
		ok, err := tbl.DealAdditional()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, wantSize, tbl.Size())
		requireFresh(t, tbl)
	}
	require.Equal(t, 1, tbl.RemainingDeckCount())

	ok, err := tbl.DealAdditional()
	assert.False(t, ok)
	assert.ErrorIs(t, err, game.ErrInsufficientCards)
	assert.Equal(t, 19, tbl.Size())
	assert.Equal(t, 0, tbl.RemainingDeckCount())
	requireFresh(t, tbl)

	ok, err = tbl.DealAdditional()
	assert.False(t, ok)
	assert.ErrorIs(t, err, game.ErrInsufficientCards)
	assert.Equal(t, 19, tbl.Size())
}

func TestDealAdditional_FourLeft(t *testing.T) {
	tbl := game.New(cards.NewRNG(3))
	game.DrainDeck(tbl, tbl.RemainingDeckCount()-4)
	require.Equal(t, 4, tbl.RemainingDeckCount())

	ok, err := tbl.DealAdditional()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 15, tbl.Size())

	ok, err = tbl.DealAdditional()
	assert.False(t, ok)
	assert.ErrorIs(t, err, game.ErrInsufficientCards)
	assert.Equal(t, 16, tbl.Size())
	assert.Equal(t, 0, tbl.RemainingDeckCount())
	requireNoDuplicates(t, tbl.OpenCards())
	requireFresh(t, tbl)
}

func TestDealReplacing_InPlace(t *testing.T) {
	tbl, open, pool := stacked(9)
	set := cards.Triplet{open[0], open[1], open[2]}
	require.True(t, set.IsMatch())

	ok, err := tbl.DealReplacing(set)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, game.InitialSize, tbl.Size())
	assert.Equal(t, 6, tbl.RemainingDeckCount())

	after := tbl.OpenCards()
	for i := 0; i < 3; i++ {
		assert.False(t, set.Contains(after[i]), "slot %d still holds a matched card", i)
		assert.Contains(t, pool, after[i])
	}
	assert.Equal(t, open[3:], after[3:], "untouched slots keep their order")
	requireNoDuplicates(t, after)
	requireFresh(t, tbl)
}

func TestDealReplacing_ScatteredSlots(t *testing.T) {
	full := cards.NewFullDeck()
	// full[0], full[4], full[8] form a set; spread them across the table
	open := []cards.Card{
		full[0], full[1], full[2], full[3], full[4], full[5],
		full[6], full[7], full[8], full[9], full[10], full[11],
	}
	open[4], open[11] = open[11], open[4]
	tbl := game.NewStacked(cards.NewRNG(2), open, full[12:])

	set := cards.Triplet{full[0], full[4], full[8]}
	ok, err := tbl.DealReplacing(set)
	require.NoError(t, err)
	require.True(t, ok)

	after := tbl.OpenCards()
	for i, c := range open {
		if set.Contains(c) {
			assert.NotEqual(t, c, after[i])
			continue
		}
		assert.Equal(t, c, after[i], "slot %d moved", i)
	}
}

func TestDealReplacing_OverTwelveShrinks(t *testing.T) {
	tbl, open, _ := stacked(30)
	_, err := tbl.DealAdditional()
	require.NoError(t, err)
	require.Equal(t, 15, tbl.Size())
	deckBefore := tbl.RemainingDeckCount()

	ok, err := tbl.DealReplacing(cards.Triplet{open[0], open[1], open[2]})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, game.InitialSize, tbl.Size())
	assert.Equal(t, deckBefore, tbl.RemainingDeckCount(), "no cards drawn")
	for _, c := range open[:3] {
		assert.False(t, tbl.Contains(c))
	}
	requireFresh(t, tbl)
}

func TestDealReplacing_ShortDeck(t *testing.T) {
	tests := []struct {
		name     string
		pool     int
		wantSize int
	}{
		{name: "one card left", pool: 1, wantSize: 10},
		{name: "two cards left", pool: 2, wantSize: 11},
		{name: "empty deck", pool: 0, wantSize: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, open, _ := stacked(tt.pool)
			ok, err := tbl.DealReplacing(cards.Triplet{open[0], open[1], open[2]})
			assert.False(t, ok)
			assert.ErrorIs(t, err, game.ErrInsufficientCards)
			assert.Equal(t, tt.wantSize, tbl.Size())
			assert.Equal(t, 0, tbl.RemainingDeckCount())
			for _, c := range open[:3] {
				assert.False(t, tbl.Contains(c))
			}
			requireFresh(t, tbl)
		})
	}
}

func TestDealReplacing_InvalidArgument(t *testing.T) {
	full := cards.NewFullDeck()
	tests := []struct {
		name string
		set  cards.Triplet
	}{
		{name: "not a set", set: cards.Triplet{full[0], full[1], full[3]}},
		{name: "card not on table", set: cards.Triplet{full[0], full[1], full[80]}},
		{name: "duplicate card", set: cards.Triplet{full[0], full[0], full[1]}},
		{name: "zero value card", set: cards.Triplet{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, open, _ := stacked(30)
			ok, err := tbl.DealReplacing(tt.set)
			assert.False(t, ok)
			assert.ErrorIs(t, err, game.ErrInvalidArgument)
			assert.Equal(t, open, tbl.OpenCards(), "table unchanged")
			assert.Equal(t, 30, tbl.RemainingDeckCount(), "deck unchanged")
		})
	}
}

func TestDealReplacing_InvalidOverTwelve(t *testing.T) {
	tbl, open, _ := stacked(30)
	_, err := tbl.DealAdditional()
	require.NoError(t, err)

	_, err = tbl.DealReplacing(cards.Triplet{open[0], open[1], open[3]})
	assert.ErrorIs(t, err, game.ErrInvalidArgument)
	assert.Equal(t, 15, tbl.Size())
}

func TestShuffle_KeepsContents(t *testing.T) {
	tbl := game.New(cards.NewRNG(21))
	_, err := tbl.DealAdditional()
	require.NoError(t, err)
	before := tbl.OpenCards()
	matches := len(tbl.AllMatches())

	tbl.Shuffle()

	assert.ElementsMatch(t, before, tbl.OpenCards())
	assert.NotEqual(t, before, tbl.OpenCards())
	assert.Len(t, tbl.AllMatches(), matches)
	requireFresh(t, tbl)
}

func TestRemove(t *testing.T) {
	tbl, open, _ := stacked(10)
	n := tbl.Remove(open[0], open[5], cards.NewFullDeck()[80])
	assert.Equal(t, 2, n)
	assert.Equal(t, 10, tbl.Size())
	assert.Equal(t, 10, tbl.RemainingDeckCount())
	assert.Equal(t, -1, tbl.IndexOf(open[0]))
	assert.Equal(t, 0, tbl.IndexOf(open[1]))
	requireFresh(t, tbl)
}

func TestHint_LastEnumerated(t *testing.T) {
	tbl, _, _ := stacked(0)
	all := tbl.AllMatches()
	require.NotEmpty(t, all)

	hint, ok := tbl.Hint()
	require.True(t, ok)
	assert.Equal(t, all[len(all)-1], hint)

	empty := game.NewStacked(cards.NewRNG(1), nil, nil)
	_, ok = empty.Hint()
	assert.False(t, ok)
	assert.True(t, empty.Over())
}

func TestAllMatches_ReturnsCopy(t *testing.T) {
	tbl, _, _ := stacked(0)
	all := tbl.AllMatches()
	require.NotEmpty(t, all)
	all[0] = cards.Triplet{}
	assert.NotEqual(t, cards.Triplet{}, tbl.AllMatches()[0])
}

func TestSnapshot(t *testing.T) {
	tbl := game.New(cards.NewRNG(8))
	snap := tbl.Snapshot()
	assert.Equal(t, tbl.OpenCards(), snap.Open)
	assert.Equal(t, len(tbl.AllMatches()), snap.Matches)
	assert.Equal(t, 69, snap.DeckRemain)
	assert.False(t, snap.Over)
}

// TestRandomPlay drives seeded sessions to the end and checks the
// invariants after every command.
func TestRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := cards.NewRNG(seed)
		tbl := game.New(rng)
		removed := 0

		for step := 0; step < 200 && !tbl.Over(); step++ {
			before := tbl.Size()
			switch hint, ok := tbl.Hint(); {
			case step%7 == 3:
				tbl.Shuffle()
			case ok:
				deck := tbl.RemainingDeckCount()
				_, err := tbl.DealReplacing(hint)
				if err != nil {
					require.ErrorIs(t, err, game.ErrInsufficientCards)
				}
				if before > game.InitialSize {
					require.Equal(t, before-3, tbl.Size())
					require.Equal(t, deck, tbl.RemainingDeckCount())
				}
				removed += 3
			default:
				_, err := tbl.DealAdditional()
				if err != nil {
					require.ErrorIs(t, err, game.ErrInsufficientCards)
				}
			}

			requireNoDuplicates(t, tbl.OpenCards())
			requireFresh(t, tbl)
			require.Equal(t, cards.NumCards, tbl.Size()+tbl.RemainingDeckCount()+removed, "seed %d step %d", seed, step)
		}
	}
}
