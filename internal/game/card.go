package game

import (
	"math/rand"
	"strconv"
)

// Card is a single Corellian Spike card. Cards carry no identity beyond
// their value; two cards of equal value are interchangeable.
type Card int

func (c Card) String() string {
	if c > 0 {
		return "+" + strconv.Itoa(int(c))
	}
	return strconv.Itoa(int(c))
}

// DeckSize is the number of cards in a fresh deck: three copies each of
// ±1..±10 plus two zeroes.
const DeckSize = 62

// Deck is the shared draw pile. It is shuffled once at game start and only
// ever shrinks; there is no reshuffle.
type Deck struct {
	cards []Card
}

// NewDeck builds and shuffles the 62-card pool.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for v := 1; v <= 10; v++ {
		for i := 0; i < 3; i++ {
			cards = append(cards, Card(v), Card(-v))
		}
	}
	cards = append(cards, 0, 0)
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &Deck{cards: cards}
}

// Draw removes and returns the top card, or ErrDeckExhausted when the pool
// is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrDeckExhausted
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Remaining reports how many cards are left to draw.
func (d *Deck) Remaining() int { return len(d.cards) }
