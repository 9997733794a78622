package game

import (
	"github.com/lox/holdemd/internal/deck"
	"github.com/lox/holdemd/internal/evaluator"
)

// hand is the ephemeral per-hand state. Per-seat ledgers are indexed by
// seat number rather than by occupant so a seat that stands mid-hand
// keeps its committed chips in the pot.
type hand struct {
	deck      *deck.Deck
	community []deck.Card
	phase     Phase
	hole      map[int][2]deck.Card
	dealtTo   map[int]string // client the seat's hole cards were dealt to
	active    []int          // seats dealt in, clockwise starting left of the button
	folded    [NumSeats]bool
	acted     [NumSeats]bool
	contrib   [NumSeats]int // cumulative chips committed this hand
	bets      [NumSeats]int // chips committed in the current betting round
	pot       int
	turn      int // seat whose action is awaited, -1 when none
	minRaise  int
	aggressor int // seat that last opened or fully raised this round, -1 when none
	sbSeat    int
	bbSeat    int
	bbActed   bool // big blind has used its preflop option
	revealed  bool // settlement went to evaluation; hole cards show at showdown
}

func (h *hand) dealtIn(seat int) bool {
	_, ok := h.hole[seat]
	return ok
}

// commit moves chips from a seat's stack into the pot
func (t *Table) commit(seat, amount int) {
	p := t.seats[seat]
	if amount > p.Stack {
		panic("game: commit exceeds stack")
	}
	p.Stack -= amount
	t.hand.bets[seat] += amount
	t.hand.contrib[seat] += amount
	t.hand.pot += amount
}

func (t *Table) maxBet() int {
	m := 0
	for _, b := range t.hand.bets {
		if b > m {
			m = b
		}
	}
	return m
}

// canAct reports whether a seat can take a voluntary action: dealt in,
// not folded, still occupied and not all-in.
func (t *Table) canAct(seat int) bool {
	h := t.hand
	p := t.seats[seat]
	return p != nil && h.dealtIn(seat) && !h.folded[seat] && p.Stack > 0
}

func (t *Table) countActors() int {
	n := 0
	for _, s := range t.hand.active {
		if t.canAct(s) {
			n++
		}
	}
	return n
}

func (t *Table) nonFoldedCount() int {
	n := 0
	for _, s := range t.hand.active {
		if !t.hand.folded[s] {
			n++
		}
	}
	return n
}

// nextToAct returns the first seat clockwise from `from` that can act
func (t *Table) nextToAct(from int) int {
	for i := 0; i < NumSeats; i++ {
		s := ((from+i)%NumSeats + NumSeats) % NumSeats
		if t.canAct(s) {
			return s
		}
	}
	return -1
}

// applyAction validates and applies a single action for the seat whose
// turn it is. Validation failures leave the hand untouched.
func (t *Table) applyAction(seat int, a Action) error {
	h := t.hand
	p := t.seats[seat]
	max := t.maxBet()

	switch a.Type {
	case Fold:
		h.folded[seat] = true

	case Check:
		if h.bets[seat] != max {
			return ErrCannotCheck
		}

	case Call:
		if max <= h.bets[seat] {
			return ErrInvalidAmount
		}
		t.commit(seat, min(max-h.bets[seat], p.Stack))

	case Bet, Raise:
		if a.Amount <= 0 {
			return ErrInvalidAmount
		}
		if a.Amount < h.minRaise {
			return ErrRaiseBelowMin
		}
		// A seat that already acted only faces action again when a short
		// all-in failed to reopen the round; it may call but not raise.
		if h.acted[seat] {
			return ErrRaiseBelowMin
		}
		toCall := max - h.bets[seat]
		if toCall+a.Amount > p.Stack {
			return ErrInsufficientChips
		}
		t.commit(seat, toCall+a.Amount)
		h.minRaise = a.Amount
		h.aggressor = seat
		t.reopenRound(seat)

	case AllIn:
		if p.Stack <= 0 {
			return ErrInsufficientChips
		}
		newBet := h.bets[seat] + p.Stack
		t.commit(seat, p.Stack)
		if newBet > max {
			incr := newBet - max
			if incr >= h.minRaise {
				h.minRaise = incr
				h.aggressor = seat
				t.reopenRound(seat)
			}
			// A short all-in below the minimum raise does not reopen
			// betting for seats that already acted.
		}

	default:
		return ErrUnknownAction
	}

	h.acted[seat] = true
	if h.phase == Preflop && seat == h.bbSeat {
		h.bbActed = true
	}
	return nil
}

// reopenRound clears acted flags after a full raise so every other seat
// gets to respond
func (t *Table) reopenRound(raiser int) {
	h := t.hand
	for i := range h.acted {
		h.acted[i] = false
	}
	h.acted[raiser] = true
}

// roundComplete reports whether the current betting round is finished:
// every seat that still has chips has matched the highest bet, everyone
// due to act has acted, and preflop the big blind has used its option.
func (t *Table) roundComplete() bool {
	h := t.hand
	max := t.maxBet()

	for _, s := range h.active {
		if t.canAct(s) && h.bets[s] != max {
			return false
		}
	}

	// With at most one seat able to act and nothing left to match, any
	// further betting would be uncallable.
	if t.countActors() <= 1 {
		return true
	}

	for _, s := range h.active {
		if t.canAct(s) && !h.acted[s] {
			return false
		}
	}

	if h.phase == Preflop && h.aggressor == -1 && !h.bbActed && t.canAct(h.bbSeat) {
		return false
	}
	return true
}

func (t *Table) mustDraw() deck.Card {
	c, ok := t.hand.deck.Draw()
	if !ok {
		panic("game: deck exhausted during hand")
	}
	return c
}

func (t *Table) dealCommunity(n int) {
	for i := 0; i < n; i++ {
		t.hand.community = append(t.hand.community, t.mustDraw())
	}
}

// advanceStreet moves the hand to the next street, dealing with a burn,
// or into settlement after the river. When at most one seat can still
// act the remaining streets run out automatically.
func (t *Table) advanceStreet() {
	h := t.hand
	for i := range h.bets {
		h.bets[i] = 0
	}
	for i := range h.acted {
		h.acted[i] = false
	}
	h.minRaise = t.cfg.BigBlind
	h.aggressor = -1

	switch h.phase {
	case Preflop:
		h.phase = Flop
		t.mustDraw() // burn
		t.dealCommunity(3)
	case Flop:
		h.phase = Turn
		t.mustDraw()
		t.dealCommunity(1)
	case Turn:
		h.phase = River
		t.mustDraw()
		t.dealCommunity(1)
	case River:
		t.settle()
		return
	default:
		return
	}

	t.log.Debug("Street dealt", "phase", h.phase, "board", cardCodes(h.community), "pot", h.pot)

	h.turn = t.nextToAct(t.dealer + 1)
	if t.countActors() <= 1 {
		h.turn = -1
		t.advanceStreet()
	}
}

// afterAction runs turn advancement and street transitions once an action
// (or forced fold) has been applied at the given seat.
func (t *Table) afterAction(seat int) {
	h := t.hand
	if t.nonFoldedCount() == 1 {
		t.earlyWin()
		return
	}
	if t.roundComplete() {
		h.turn = -1
		t.advanceStreet()
		return
	}
	h.turn = t.nextToAct(seat + 1)
}

// earlyWin awards the whole pot to the single remaining seat without
// evaluation. Hole cards stay hidden through the showdown display.
func (t *Table) earlyWin() {
	h := t.hand
	winner := -1
	for _, s := range h.active {
		if !h.folded[s] {
			winner = s
			break
		}
	}
	h.phase = Showdown
	h.revealed = false
	h.turn = -1
	if winner >= 0 && t.seats[winner] != nil {
		t.seats[winner].Stack += h.pot
		t.log.Info("Hand won uncontested", "seat", winner, "name", t.seats[winner].Name, "pot", h.pot)
	}
}

// settle evaluates every remaining seat, builds the pots and distributes
// the chips. Ties split evenly with odd chips going to the tied winner
// first in clockwise order from the button.
func (t *Table) settle() {
	h := t.hand
	h.phase = Showdown
	h.revealed = true
	h.turn = -1

	eligible := make([]bool, NumSeats)
	scores := make(map[int]evaluator.Score)
	for _, s := range h.active {
		if h.folded[s] {
			continue
		}
		eligible[s] = true
		cards := append([]deck.Card{h.hole[s][0], h.hole[s][1]}, h.community...)
		scores[s] = evaluator.Evaluate(cards)
	}

	pots, forfeited := BuildPots(h.contrib[:], eligible)
	if forfeited > 0 {
		t.total -= forfeited
		t.log.Warn("Pot with no eligible winner forfeited", "amount", forfeited)
	}

	for _, pot := range pots {
		var best []int
		for _, s := range pot.Eligible {
			if len(best) == 0 {
				best = []int{s}
				continue
			}
			switch evaluator.Compare(scores[s], scores[best[0]]) {
			case 1:
				best = []int{s}
			case 0:
				best = append(best, s)
			}
		}
		if len(best) == 0 {
			continue
		}
		t.sortClockwise(best)
		share := pot.Amount / len(best)
		rem := pot.Amount % len(best)
		for i, s := range best {
			amt := share
			if i < rem {
				amt++
			}
			t.seats[s].Stack += amt
			t.log.Info("Pot awarded", "seat", s, "name", t.seats[s].Name,
				"amount", amt, "hand", scores[s].Desc)
		}
	}
}

// sortClockwise orders seats by clockwise distance from the seat left of
// the button
func (t *Table) sortClockwise(seats []int) {
	dist := func(s int) int {
		return ((s-t.dealer-1)%NumSeats + NumSeats) % NumSeats
	}
	for i := 1; i < len(seats); i++ {
		for j := i; j > 0 && dist(seats[j]) < dist(seats[j-1]); j-- {
			seats[j], seats[j-1] = seats[j-1], seats[j]
		}
	}
}

func cardCodes(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}
