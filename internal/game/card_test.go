package game

import (
	"errors"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewDeck_Composition(t *testing.T) {
	d := NewDeck(testRNG())

	if d.Remaining() != DeckSize {
		t.Fatalf("deck size: got %d, want %d", d.Remaining(), DeckSize)
	}

	counts := map[Card]int{}
	for d.Remaining() > 0 {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		counts[c]++
	}

	if counts[0] != 2 {
		t.Fatalf("zeroes: got %d, want 2", counts[0])
	}
	for v := 1; v <= 10; v++ {
		if counts[Card(v)] != 3 {
			t.Fatalf("copies of %d: got %d, want 3", v, counts[Card(v)])
		}
		if counts[Card(-v)] != 3 {
			t.Fatalf("copies of %d: got %d, want 3", -v, counts[Card(-v)])
		}
	}
}

func TestDeck_MultisetPreservedAcrossDraws(t *testing.T) {
	d := NewDeck(testRNG())

	counts := map[Card]int{}
	for i := 0; i < 20; i++ {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		counts[c]++
	}
	for _, c := range d.cards {
		counts[c]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total != DeckSize {
		t.Fatalf("drawn + remaining: got %d, want %d", total, DeckSize)
	}
	if counts[0] != 2 || counts[7] != 3 || counts[-7] != 3 {
		t.Fatalf("multiset changed under draws: %v", counts)
	}
}

func TestDeck_DrawExhausted(t *testing.T) {
	d := &Deck{}
	_, err := d.Draw()
	if !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("want ErrDeckExhausted, got %v", err)
	}
}

func TestCard_String(t *testing.T) {
	cases := []struct {
		card Card
		want string
	}{
		{card: 5, want: "+5"},
		{card: -5, want: "-5"},
		{card: 0, want: "0"},
		{card: 10, want: "+10"},
	}

	for _, tc := range cases {
		if got := tc.card.String(); got != tc.want {
			t.Fatalf("String(%d): got %q, want %q", int(tc.card), got, tc.want)
		}
	}
}
