package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCards() []Card {
	return NewDeck(nil, false).Cards()
}

func TestCard_Equality(t *testing.T) {
	for _, s1 := range Suits() {
		for _, r1 := range Ranks() {
			for _, s2 := range Suits() {
				for _, r2 := range Ranks() {
					a, b := NewCard(s1, r1), NewCard(s2, r2)
					want := s1 == s2 && r1 == r2
					if a.Equal(b) != want || (a == b) != want {
						t.Fatalf("%#v == %#v: got %v, want %v", a, b, a.Equal(b), want)
					}
				}
			}
		}
	}
}

func TestCard_TotalOrder(t *testing.T) {
	cards := allCards()
	for _, a := range cards {
		for _, b := range cards {
			n := 0
			if a.Less(b) {
				n++
			}
			if b.Less(a) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			require.Equal(t, 1, n, "exactly one of <, ==, > must hold for %#v and %#v", a, b)
			assert.Equal(t, -a.Compare(b), b.Compare(a))

			for _, c := range cards {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Fatalf("not transitive: %#v < %#v < %#v", a, b, c)
				}
			}
		}
	}
}

func TestCard_SuitBreaksTie(t *testing.T) {
	clubs := NewCard(Clubs, Ace)
	diamonds := NewCard(Diamonds, Ace)
	hearts := NewCard(Hearts, Ace)
	spades := NewCard(Spades, Ace)

	assert.True(t, clubs.Less(diamonds))
	assert.True(t, diamonds.Less(hearts))
	assert.True(t, hearts.Less(spades))
}

func TestCard_RankDominatesSuit(t *testing.T) {
	assert.True(t, NewCard(Spades, Two).Less(NewCard(Clubs, Three)))
	assert.Equal(t, 1, NewCard(Hearts, Ace).Compare(NewCard(Spades, King)))
}

func TestCard_MapKey(t *testing.T) {
	seen := map[Card]int{}
	for _, c := range allCards() {
		seen[c]++
	}
	seen[NewCard(Hearts, Queen)]++

	assert.Len(t, seen, 52)
	assert.Equal(t, 2, seen[Card{Suit: Hearts, Rank: Queen}])
}

func TestCard_Strings(t *testing.T) {
	testCases := []struct {
		card    Card
		display string
		debug   string
		code    string
	}{
		{NewCard(Hearts, Ace), "Ace of Hearts", "Card(ACE, HEARTS)", "AH"},
		{NewCard(Clubs, Ten), "Ten of Clubs", "Card(TEN, CLUBS)", "10C"},
		{NewCard(Spades, Two), "Two of Spades", "Card(TWO, SPADES)", "2S"},
		{NewCard(Diamonds, Queen), "Queen of Diamonds", "Card(QUEEN, DIAMONDS)", "QD"},
	}

	for _, tc := range testCases {
		t.Run(tc.display, func(t *testing.T) {
			assert.Equal(t, tc.display, tc.card.DisplayName())
			assert.Equal(t, tc.display, tc.card.String())
			assert.Equal(t, tc.debug, fmt.Sprintf("%#v", tc.card))
			assert.Equal(t, tc.code, tc.card.Code())
		})
	}
}

func TestParseCard(t *testing.T) {
	for _, c := range allCards() {
		got, err := ParseCard(c.Code())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCard(" qs ")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Spades, Queen), got)

	for _, bad := range []string{"", "A", "1H", "11S", "AX", "ZZ", "10", "+5H", "-5H", "05H", "010C", " 5 H"} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, bad)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards([]string{"AH", "2c"})
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Hearts, Ace), NewCard(Clubs, Two)}, cards)
	assert.Equal(t, "AH 2C", FormatCodes(cards))

	_, err = ParseCards([]string{"AH", "nope"})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCard_Valid(t *testing.T) {
	assert.True(t, NewCard(Clubs, Two).Valid())
	assert.False(t, Card{}.Valid())
	assert.False(t, NewCard(Suit(9), Ace).Valid())
	assert.False(t, NewCard(Hearts, Rank(15)).Valid())
}
