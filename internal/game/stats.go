package game

import "slices"

// StatsOptions selects how many of the greatest and least cards CardsStats returns.
// A count of zero or less contributes nothing.
type StatsOptions struct {
	Max int
	Min int
}

// MaxCard returns the greatest card by rank, then suit.
func MaxCard(cards ...Card) (Card, error) {
	if len(cards) == 0 {
		return Card{}, ErrNoCards
	}
	return slices.MaxFunc(cards, Card.Compare), nil
}

// SortCards returns a sorted copy of cards.
func SortCards(cards []Card, descending bool) []Card {
	out := slices.Clone(cards)
	if descending {
		slices.SortFunc(out, func(a, b Card) int { return b.Compare(a) })
	} else {
		slices.SortFunc(out, Card.Compare)
	}
	return out
}

// CardsStats returns the opts.Max greatest cards in descending order
// followed by the opts.Min least cards in ascending order.
func CardsStats(cards []Card, opts StatsOptions) []Card {
	var result []Card
	if opts.Max > 0 {
		result = append(result, firstN(SortCards(cards, true), opts.Max)...)
	}
	if opts.Min > 0 {
		result = append(result, firstN(SortCards(cards, false), opts.Min)...)
	}
	return result
}

func firstN(cards []Card, n int) []Card {
	if n > len(cards) {
		n = len(cards)
	}
	return cards[:n]
}
