package game

import "strings"

// Hand is one player's cards. Insertion order has no game meaning but is
// preserved for display.
type Hand struct {
	cards []Card
}

// Cards returns a copy of the hand in display order.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size reports how many cards the hand holds.
func (h *Hand) Size() int { return len(h.cards) }

// Total is the arithmetic sum of the hand. Recomputed on demand; the hand
// mutates too often for caching to pay off.
func (h *Hand) Total() int {
	total := 0
	for _, c := range h.cards {
		total += int(c)
	}
	return total
}

// Draw appends one card from the deck, propagating ErrDeckExhausted.
func (h *Hand) Draw(d *Deck) error {
	c, err := d.Draw()
	if err != nil {
		return err
	}
	h.cards = append(h.cards, c)
	return nil
}

// Discard removes one occurrence of card. It refuses to empty the hand:
// a hand must keep at least one card once the game has started. Returns
// whether the discard happened.
func (h *Hand) Discard(card Card) bool {
	if len(h.cards) <= 1 {
		return false
	}
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Replace atomically swaps one occurrence of card for a fresh draw. The hand
// size never changes, so the last-card floor does not apply here. Returns
// false when the card is not in the hand; the deck is only touched on a
// successful match.
func (h *Hand) Replace(card Card, d *Deck) (bool, error) {
	idx := -1
	for i, c := range h.cards {
		if c == card {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}
	fresh, err := d.Draw()
	if err != nil {
		return false, err
	}
	h.cards = append(h.cards[:idx], h.cards[idx+1:]...)
	h.cards = append(h.cards, fresh)
	return true, nil
}

// String renders the hand the way the table shows it: | +5 | -3 | 0 |
func (h *Hand) String() string {
	if len(h.cards) == 0 {
		return "| |"
	}
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "| " + strings.Join(parts, " | ") + " |"
}

// Player is a seat at the table: a human identity, or the synthesized house
// opponent used to close out solo games. The core never interprets IDs
// beyond equality.
type Player struct {
	ID   string
	Name string
	AI   bool
	Hand Hand
}
