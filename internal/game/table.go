package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdemd/internal/deck"
)

// NumSeats is the fixed number of seats at a table
const NumSeats = 6

// Config holds the table stakes and buy-in bounds
type Config struct {
	SmallBlind int
	BigBlind   int
	MinBuyIn   int
	MaxBuyIn   int
}

// DefaultConfig returns the standard table stakes
func DefaultConfig() Config {
	return Config{
		SmallBlind: 10,
		BigBlind:   20,
		MinBuyIn:   100,
		MaxBuyIn:   1_000_000,
	}
}

type seatSnapshot struct {
	clientID string
	stack    int
}

// Table is the poker table state machine. It is not safe for concurrent
// use; the room serializes all access through its command loop.
type Table struct {
	cfg    Config
	log    *log.Logger
	rng    *rand.Rand
	seats  [NumSeats]*Player
	owner  string
	dealer int
	hand   *hand

	prehand [NumSeats]seatSnapshot
	rigged  []deck.Card

	// total is every chip in play, updated at buy-in, stand and forfeit.
	// Stacks plus pot must always sum to it.
	total int
}

// Option configures a Table
type Option func(*Table)

// WithCards replaces the shuffled deck with a fixed card order for every
// hand, first listed card drawn first. Used by tests to script deals.
func WithCards(cards []deck.Card) Option {
	return func(t *Table) {
		t.rigged = cards
	}
}

// NewTable creates an idle table
func NewTable(cfg Config, logger *log.Logger, rng *rand.Rand, opts ...Option) *Table {
	t := &Table{
		cfg:    cfg,
		log:    logger,
		rng:    rng,
		dealer: -1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Config returns the table stakes
func (t *Table) Config() Config {
	return t.cfg
}

// Phase returns the current hand phase, Idle between hands
func (t *Table) Phase() Phase {
	if t.hand == nil {
		return Idle
	}
	return t.hand.phase
}

// Owner returns the client ID of the table owner, empty when unclaimed
func (t *Table) Owner() string {
	return t.owner
}

// Total returns the chips in play across all stacks and the pot
func (t *Table) Total() int {
	return t.total
}

// Seat returns the player at the given seat, nil when vacant
func (t *Table) Seat(seat int) *Player {
	if seat < 0 || seat >= NumSeats {
		return nil
	}
	return t.seats[seat]
}

// SeatOf returns the seat occupied by the client, -1 when not seated
func (t *Table) SeatOf(clientID string) int {
	for i, p := range t.seats {
		if p != nil && p.ClientID == clientID {
			return i
		}
	}
	return -1
}

// ClaimOwner makes the client the table owner. The most recent claim
// wins; any previous owner loses the role.
func (t *Table) ClaimOwner(clientID string) error {
	if t.owner != "" && t.owner != clientID {
		t.log.Info("Owner role transferred", "from", t.owner, "to", clientID)
	}
	t.owner = clientID
	return nil
}

// Sit seats the client with the given buy-in, clamped to the table's
// buy-in bounds. Sitting during a hand is allowed; the player is dealt in
// from the next hand.
func (t *Table) Sit(clientID, name string, seat, buyIn int) error {
	if name == "" {
		return ErrNoUsername
	}
	if seat < 0 || seat >= NumSeats {
		return ErrInvalidSeat
	}
	if t.seats[seat] != nil {
		return ErrSeatOccupied
	}
	if t.SeatOf(clientID) != -1 {
		return ErrSeatOccupied
	}

	buyIn = min(max(buyIn, t.cfg.MinBuyIn), t.cfg.MaxBuyIn)
	t.seats[seat] = &Player{ClientID: clientID, Name: name, Stack: buyIn}
	t.total += buyIn
	t.log.Info("Player seated", "seat", seat, "name", name, "stack", buyIn)
	return nil
}

// Stand removes the client from their seat. Chips already committed to
// the current hand stay in the pot; the rest of the stack leaves play.
func (t *Table) Stand(clientID string) error {
	seat := t.SeatOf(clientID)
	if seat == -1 {
		return ErrNotSeated
	}
	t.vacate(seat)
	return nil
}

// Kick is the owner forcing a seat to stand
func (t *Table) Kick(ownerID string, seat int) error {
	if t.owner != ownerID {
		return ErrNotOwner
	}
	if seat < 0 || seat >= NumSeats {
		return ErrInvalidSeat
	}
	if t.seats[seat] == nil {
		return ErrNotSeated
	}
	t.vacate(seat)
	return nil
}

// ClientGone handles a disconnect: the owner slot frees up and the
// client's seat is vacated, folding them out of any live hand.
func (t *Table) ClientGone(clientID string) {
	if t.owner == clientID {
		t.owner = ""
	}
	if seat := t.SeatOf(clientID); seat != -1 {
		t.vacate(seat)
	}
}

func (t *Table) vacate(seat int) {
	t.forceFold(seat)
	p := t.seats[seat]
	t.total -= p.Stack
	t.seats[seat] = nil
	t.log.Info("Seat vacated", "seat", seat, "name", p.Name, "stack", p.Stack)
}

// forceFold folds a seat out of a live betting round, advancing the hand
// as if the player folded in turn
func (t *Table) forceFold(seat int) {
	h := t.hand
	if h == nil || !h.phase.Betting() || !h.dealtIn(seat) || h.folded[seat] {
		return
	}
	h.folded[seat] = true
	if t.nonFoldedCount() == 1 {
		t.earlyWin()
		return
	}
	if t.roundComplete() {
		h.turn = -1
		t.advanceStreet()
		return
	}
	if h.turn == seat {
		h.turn = t.nextToAct(seat + 1)
	}
}

// StartHand deals a new hand. Only the owner may start one, the table
// must be idle, and at least two seated players need chips.
func (t *Table) StartHand(clientID string) (err error) {
	if t.owner != clientID {
		return ErrNotOwner
	}
	if t.hand != nil {
		return ErrHandInProgress
	}

	var playable []int
	for i, p := range t.seats {
		if p != nil && p.Stack > 0 {
			playable = append(playable, i)
		}
	}
	if len(playable) < 2 {
		return ErrNotEnoughPlayers
	}

	for i, p := range t.seats {
		if p == nil {
			t.prehand[i] = seatSnapshot{}
		} else {
			t.prehand[i] = seatSnapshot{clientID: p.ClientID, stack: p.Stack}
		}
	}
	defer t.recoverHand(&err)

	t.dealer = t.nextPlayable(t.dealer + 1)

	h := &hand{
		phase:     Preflop,
		hole:      make(map[int][2]deck.Card),
		dealtTo:   make(map[int]string),
		turn:      -1,
		aggressor: -1,
		minRaise:  t.cfg.BigBlind,
	}
	if t.rigged != nil {
		h.deck = deck.From(t.rigged)
	} else {
		h.deck = deck.New()
		h.deck.Shuffle(t.rng)
	}
	t.hand = h

	for i := 1; i <= NumSeats; i++ {
		s := (t.dealer + i) % NumSeats
		if p := t.seats[s]; p != nil && p.Stack > 0 {
			h.active = append(h.active, s)
		}
	}
	for _, s := range h.active {
		h.hole[s] = [2]deck.Card{t.mustDraw(), t.mustDraw()}
		h.dealtTo[s] = t.seats[s].ClientID
	}

	h.sbSeat = h.active[0]
	h.bbSeat = h.active[1]
	t.commit(h.sbSeat, min(t.cfg.SmallBlind, t.seats[h.sbSeat].Stack))
	t.commit(h.bbSeat, min(t.cfg.BigBlind, t.seats[h.bbSeat].Stack))

	t.log.Info("Hand started", "dealer", t.dealer, "sb", h.sbSeat, "bb", h.bbSeat,
		"players", len(h.active))

	if t.countActors() <= 1 && t.roundComplete() {
		t.advanceStreet()
		return nil
	}
	h.turn = t.nextToAct(h.bbSeat + 1)
	return nil
}

func (t *Table) nextPlayable(from int) int {
	for i := 0; i < NumSeats; i++ {
		s := ((from+i)%NumSeats + NumSeats) % NumSeats
		if p := t.seats[s]; p != nil && p.Stack > 0 {
			return s
		}
	}
	return -1
}

// Act applies a player action to the hand in progress
func (t *Table) Act(clientID string, a Action) (err error) {
	seat := t.SeatOf(clientID)
	if seat == -1 {
		return ErrNotSeated
	}
	h := t.hand
	if h == nil || !h.phase.Betting() {
		return ErrNotInBettingPhase
	}
	if h.folded[seat] {
		return ErrAlreadyFolded
	}
	if h.turn != seat {
		return ErrNotYourTurn
	}

	defer t.recoverHand(&err)

	if err := t.applyAction(seat, a); err != nil {
		return err
	}
	t.log.Debug("Action applied", "seat", seat, "action", a.Type,
		"amount", a.Amount, "pot", h.pot)
	t.afterAction(seat)
	return nil
}

// FinishHand clears a settled hand and returns the table to idle
func (t *Table) FinishHand() {
	if t.hand == nil || t.hand.phase != Showdown {
		return
	}
	t.hand = nil
}

// recoverHand converts a panic during hand processing into an aborted
// hand: committed chips return to the stacks as they stood before the
// deal. A seat whose occupant changed mid-hand cannot be restored; its
// committed chips leave play and the conservation counter drops with
// them.
func (t *Table) recoverHand(err *error) {
	r := recover()
	if r == nil {
		return
	}
	t.log.Error("Hand aborted by internal error", "panic", r)
	for i, snap := range t.prehand {
		p := t.seats[i]
		if p != nil && p.ClientID == snap.clientID {
			p.Stack = snap.stack
		} else if t.hand != nil && t.hand.contrib[i] > 0 {
			t.total -= t.hand.contrib[i]
			t.log.Warn("Unrestorable contribution forfeited on abort",
				"seat", i, "amount", t.hand.contrib[i])
		}
	}
	t.hand = nil
	*err = fmt.Errorf("internal error: %v", r)
}
