package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHand() []Card {
	return []Card{
		NewCard(Hearts, Two),
		NewCard(Spades, Ace),
		NewCard(Diamonds, Ten),
		NewCard(Clubs, King),
		NewCard(Spades, Five),
	}
}

func TestMaxCard(t *testing.T) {
	got, err := MaxCard(NewCard(Hearts, Two), NewCard(Spades, Ace))
	require.NoError(t, err)
	assert.Equal(t, NewCard(Spades, Ace), got)

	got, err = MaxCard(NewCard(Clubs, Ace), NewCard(Hearts, Ace), NewCard(Diamonds, Ace))
	require.NoError(t, err)
	assert.Equal(t, NewCard(Hearts, Ace), got)

	_, err = MaxCard()
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestCardsStats(t *testing.T) {
	testCases := []struct {
		name string
		opts StatsOptions
		want []Card
	}{
		{
			name: "max and min",
			opts: StatsOptions{Max: 2, Min: 1},
			want: []Card{NewCard(Spades, Ace), NewCard(Clubs, King), NewCard(Hearts, Two)},
		},
		{
			name: "min only",
			opts: StatsOptions{Min: 2},
			want: []Card{NewCard(Hearts, Two), NewCard(Spades, Five)},
		},
		{
			name: "none",
			opts: StatsOptions{},
			want: nil,
		},
		{
			name: "more than available",
			opts: StatsOptions{Max: 10},
			want: []Card{
				NewCard(Spades, Ace),
				NewCard(Clubs, King),
				NewCard(Diamonds, Ten),
				NewCard(Spades, Five),
				NewCard(Hearts, Two),
			},
		},
		{
			name: "negative counts ignored",
			opts: StatsOptions{Max: -1, Min: -3},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hand := sampleHand()
			assert.Equal(t, tc.want, CardsStats(hand, tc.opts))
			assert.Equal(t, sampleHand(), hand, "input must not be reordered")
		})
	}
}

func TestSortCards(t *testing.T) {
	asc := SortCards(sampleHand(), false)
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i-1].Less(asc[i]))
	}

	desc := SortCards(sampleHand(), true)
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i].Less(desc[i-1]))
	}
}
