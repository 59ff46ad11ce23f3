package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInvalidCard     = errors.New("invalid card")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoCards         = errors.New("no cards given")
)

// Suit values break ties between cards of equal rank.
type Suit int

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

var suitNames = map[Suit]string{
	Clubs:    "CLUBS",
	Diamonds: "DIAMONDS",
	Hearts:   "HEARTS",
	Spades:   "SPADES",
}

var suitCodes = map[Suit]string{
	Clubs:    "C",
	Diamonds: "D",
	Hearts:   "H",
	Spades:   "S",
}

// Suits returns every suit in declaration order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) Name() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SUIT(%d)", int(s))
}

func (s Suit) String() string {
	return title(s.Name())
}

// Rank values are 2-14 (A=14) and are the primary ordering key.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two: "TWO", Three: "THREE", Four: "FOUR", Five: "FIVE", Six: "SIX",
	Seven: "SEVEN", Eight: "EIGHT", Nine: "NINE", Ten: "TEN",
	Jack: "JACK", Queen: "QUEEN", King: "KING", Ace: "ACE",
}

var faceCodes = map[Rank]string{
	Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// Ranks returns every rank in declaration order.
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RANK(%d)", int(r))
}

func (r Rank) String() string {
	return title(r.Name())
}

func (r Rank) code() string {
	if c, ok := faceCodes[r]; ok {
		return c
	}
	return strconv.Itoa(int(r))
}

// rankByCode holds only the codes Code prints, so "05H" or "+5H" do not parse.
var rankByCode = func() map[string]Rank {
	m := make(map[string]Rank, 13)
	for _, r := range Ranks() {
		m[r.code()] = r
	}
	return m
}()

// title builds a fresh Caser per call since Casers are stateful.
func title(name string) string {
	return cases.Title(language.English).String(strings.ToLower(name))
}

// Card is an immutable playing card. It is comparable and safe to use as a map key.
type Card struct {
	Suit Suit
	Rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// DisplayName returns e.g. "Ace of Hearts".
func (c Card) DisplayName() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

func (c Card) String() string {
	return c.DisplayName()
}

func (c Card) GoString() string {
	return fmt.Sprintf("Card(%s, %s)", c.Rank.Name(), c.Suit.Name())
}

// Code returns the short form used in chat commands and storage: "AH", "10C".
func (c Card) Code() string {
	return c.Rank.code() + suitCodes[c.Suit]
}

func (c Card) Equal(o Card) bool {
	return c == o
}

// Compare orders by rank, then by suit. It returns -1, 0 or +1.
func (c Card) Compare(o Card) int {
	switch {
	case c.Rank < o.Rank:
		return -1
	case c.Rank > o.Rank:
		return 1
	case c.Suit < o.Suit:
		return -1
	case c.Suit > o.Suit:
		return 1
	}
	return 0
}

func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

// ParseCard reads a short code such as "AH", "10c" or "qs".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	suitCode := s[len(s)-1:]
	for su, code := range suitCodes {
		if code == suitCode {
			suit = su
			break
		}
	}
	if suit == 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	rank, ok := rankByCode[s[:len(s)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses every code and stops at the first invalid one.
func ParseCards(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCodes joins card codes with spaces.
func FormatCodes(cards []Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return strings.Join(codes, " ")
}
