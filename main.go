package main

import (
	"flag"
	"fmt"
	"log"

	"carddeck/internal/game"
)

func main() {
	seed := flag.Uint64("seed", 0, "deal with a fixed seed (0 picks a random one)")
	noShuffle := flag.Bool("noshuffle", false, "keep the deck in suit and rank order")
	flag.Parse()

	var rng game.Shuffler
	if *seed != 0 {
		rng = game.NewRand(*seed)
	}
	deck := game.NewDeck(rng, !*noShuffle)

	fmt.Println("Accessing cards directly by index:")
	for i := range 5 {
		c, err := deck.At(i)
		if err != nil {
			log.Fatalf("Failed to read card %d: %v", i, err)
		}
		fmt.Printf("Card at index %d: %s\n", i, c)
	}
	fmt.Println()

	fmt.Println("Iterating through all cards in the deck:")
	for _, c := range deck.All() {
		fmt.Println(c)
	}
	fmt.Println()

	card1 := game.NewCard(game.Hearts, game.Ace)
	card2 := game.NewCard(game.Spades, game.King)
	fmt.Printf("%s > %s: %v\n", card1, card2, card2.Less(card1))
	fmt.Printf("%s == %s: %v\n", card1, card2, card1.Equal(card2))
}
