// Package evaluator ranks 5-7 card poker hands.
//
// A hand evaluates to a Score: a category plus the tie-breaking ranks for
// that category in comparison order. Two scores compare lexicographically
// over (category, ranks...), so the full ordering of poker hands falls out
// of a single slice comparison.
package evaluator

import (
	"fmt"

	"github.com/lox/holdemd/internal/deck"
)

// Category enumerates hand categories from weakest to strongest
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score is the comparable strength of a hand. Ranks holds the category's
// tie-breakers high-to-low; kickers never include ranks the category
// already consumed.
type Score struct {
	Category Category
	Ranks    []int
	Desc     string
}

// Compare returns -1, 0 or +1 ordering a against b. Missing tie-break
// positions compare as zero, so scores of different shapes still form a
// total order.
func Compare(a, b Score) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}
		return 1
	}
	n := len(a.Ranks)
	if len(b.Ranks) > n {
		n = len(b.Ranks)
	}
	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(a.Ranks) {
			av = a.Ranks[i]
		}
		if i < len(b.Ranks) {
			bv = b.Ranks[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Evaluate returns the best 5-card score available in 5 to 7 cards.
// Passing any other number of cards is a programming error.
func Evaluate(cards []deck.Card) Score {
	if len(cards) < 5 || len(cards) > 7 {
		panic(fmt.Sprintf("evaluator: need 5-7 cards, got %d", len(cards)))
	}

	var counts [13]int
	var present [13]bool
	var bySuit [4][13]bool
	suitSizes := [4]int{}
	for _, c := range cards {
		counts[c.Rank]++
		present[c.Rank] = true
		if !bySuit[c.Suit][c.Rank] {
			bySuit[c.Suit][c.Rank] = true
			suitSizes[c.Suit]++
		}
	}

	// At most one suit can hold five of seven cards.
	flushSuit := -1
	for s := 0; s < 4; s++ {
		if suitSizes[s] >= 5 {
			flushSuit = s
			break
		}
	}

	if flushSuit >= 0 {
		if high := straightHigh(bySuit[flushSuit]); high >= 0 {
			return Score{
				Category: StraightFlush,
				Ranks:    []int{high},
				Desc:     fmt.Sprintf("Straight Flush, %s high", rankName(high)),
			}
		}
	}

	if quad := highestWithCount(counts, 4); quad >= 0 {
		kicker := topRanks(present, 1, quad)
		return Score{
			Category: FourOfAKind,
			Ranks:    append([]int{quad}, kicker...),
			Desc:     fmt.Sprintf("Four of a Kind, %s", rankPlural(quad)),
		}
	}

	trips := highestWithCount(counts, 3)
	if trips >= 0 {
		// A second trips or any pair fills the house.
		pair := -1
		for r := 12; r >= 0; r-- {
			if r != trips && counts[r] >= 2 {
				pair = r
				break
			}
		}
		if pair >= 0 {
			return Score{
				Category: FullHouse,
				Ranks:    []int{trips, pair},
				Desc:     fmt.Sprintf("Full House, %s over %s", rankPlural(trips), rankPlural(pair)),
			}
		}
	}

	if flushSuit >= 0 {
		top := topRanks(bySuit[flushSuit], 5)
		return Score{
			Category: Flush,
			Ranks:    top,
			Desc:     fmt.Sprintf("Flush, %s high", rankName(top[0])),
		}
	}

	if high := straightHigh(present); high >= 0 {
		return Score{
			Category: Straight,
			Ranks:    []int{high},
			Desc:     fmt.Sprintf("Straight, %s high", rankName(high)),
		}
	}

	if trips >= 0 {
		kickers := topRanks(present, 2, trips)
		return Score{
			Category: ThreeOfAKind,
			Ranks:    append([]int{trips}, kickers...),
			Desc:     fmt.Sprintf("Three of a Kind, %s", rankPlural(trips)),
		}
	}

	// Trips are gone by here, so count >= 2 means exactly a pair.
	var pairs []int
	for r := 12; r >= 0; r-- {
		if counts[r] >= 2 {
			pairs = append(pairs, r)
		}
	}

	if len(pairs) >= 2 {
		hi, lo := pairs[0], pairs[1]
		kicker := topRanks(present, 1, hi, lo)
		return Score{
			Category: TwoPair,
			Ranks:    append([]int{hi, lo}, kicker...),
			Desc:     fmt.Sprintf("Two Pair, %s and %s", rankPlural(hi), rankPlural(lo)),
		}
	}

	if len(pairs) == 1 {
		kickers := topRanks(present, 3, pairs[0])
		return Score{
			Category: OnePair,
			Ranks:    append([]int{pairs[0]}, kickers...),
			Desc:     fmt.Sprintf("Pair of %s", rankPlural(pairs[0])),
		}
	}

	top := topRanks(present, 5)
	return Score{
		Category: HighCard,
		Ranks:    top,
		Desc:     fmt.Sprintf("%s High", rankName(top[0])),
	}
}

// straightHigh returns the top rank of the best straight in the presence
// table, or -1. The wheel A-2-3-4-5 reports 3 (the five).
func straightHigh(present [13]bool) int {
	for top := 12; top >= 4; top-- {
		run := true
		for r := top - 4; r <= top; r++ {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return top
		}
	}
	if present[12] && present[0] && present[1] && present[2] && present[3] {
		return 3
	}
	return -1
}

func highestWithCount(counts [13]int, n int) int {
	for r := 12; r >= 0; r-- {
		if counts[r] == n {
			return r
		}
	}
	return -1
}

// topRanks returns the n highest ranks present, excluding consumed ranks
func topRanks(present [13]bool, n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for r := 12; r >= 0 && len(out) < n; r-- {
		if !present[r] {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if r == ex {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}

var rankNames = [13]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

func rankName(r int) string {
	if r < 0 || r > 12 {
		return "?"
	}
	return rankNames[r]
}

func rankPlural(r int) string {
	if r == 4 { // Six
		return "Sixes"
	}
	return rankName(r) + "s"
}
