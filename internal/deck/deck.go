package deck

import rand "math/rand/v2"

// Deck is an ordered sequence of cards. Cards are drawn by popping from
// the end of the slice.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck in a deterministic order
func New() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// From creates a deck that yields the given cards in order: the first
// card listed is the first card drawn. Used to rig decks in tests.
func From(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle performs an in-place Fisher-Yates shuffle using the given source
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the next card. Returns false when the deck is
// empty; running dry during normal hand flow is a programming error the
// caller must treat as fatal.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
