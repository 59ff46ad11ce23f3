package game

import (
	crand "crypto/rand"
	"iter"
	mrand "math/rand/v2"
)

// Shuffler is the random source a deck shuffles with. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered pile of cards. Index 0 is the top.
// A Deck is not safe for concurrent use; see Manager.
type Deck struct {
	rng   Shuffler
	cards []Card
}

// NewRand returns a PCG source for reproducible dealing.
func NewRand(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed))
}

func cryptoRand() *mrand.Rand {
	var seed [32]byte
	crand.Read(seed[:])
	return mrand.New(mrand.NewChaCha8(seed))
}

// NewDeck builds all 52 cards suit by suit, ranks ascending within a suit,
// and shuffles them with rng when shuffle is set. A nil rng uses a crypto-seeded source.
func NewDeck(rng Shuffler, shuffle bool) *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}

	d := NewDeckFromCards(rng, cards)
	if shuffle {
		d.Shuffle()
	}
	return d
}

// NewDeckFromCards restores a deck holding a copy of cards in the given order.
func NewDeckFromCards(rng Shuffler, cards []Card) *Deck {
	if rng == nil {
		rng = cryptoRand()
	}
	d := &Deck{
		rng:   rng,
		cards: make([]Card, len(cards)),
	}
	copy(d.cards, cards)
	return d
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card = d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DrawN draws up to n cards from the top. Returns fewer if the deck is short.
func (d *Deck) DrawN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	drawn := make([]Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Peek returns the top n cards without removing them.
func (d *Deck) Peek(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	return out
}

// AddCard puts c at the bottom of the deck. Duplicates are allowed.
func (d *Deck) AddCard(c Card) error {
	if !c.Valid() {
		return ErrInvalidCard
	}
	d.cards = append(d.cards, c)
	return nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) At(i int) (Card, error) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, ErrIndexOutOfRange
	}
	return d.cards[i], nil
}

// All iterates the cards top to bottom as they were when iteration started.
func (d *Deck) All() iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		snapshot := d.Cards()
		for i, c := range snapshot {
			if !yield(i, c) {
				return
			}
		}
	}
}
