package game

// SeatView is one seat as shown to a particular viewer
type SeatView struct {
	Seat         int      `json:"seat"`
	Name         string   `json:"name"`
	Stack        int      `json:"stack"`
	Bet          int      `json:"bet,omitempty"`
	Contribution int      `json:"contribution,omitempty"`
	Folded       bool     `json:"folded,omitempty"`
	AllIn        bool     `json:"all_in,omitempty"`
	Cards        []string `json:"cards,omitempty"`
}

// View is the table state projected for a single viewer. Hole cards other
// than the viewer's own appear as "??" until a contested showdown reveals
// them; a hand won by everyone else folding reveals nothing.
type View struct {
	Phase        string     `json:"phase"`
	Dealer       int        `json:"dealer"`
	Pot          int        `json:"pot"`
	Community    []string   `json:"community"`
	Turn         int        `json:"turn"`
	MinRaise     int        `json:"min_raise,omitempty"`
	SmallBlind   int        `json:"small_blind"`
	BigBlind     int        `json:"big_blind"`
	MinBuyIn     int        `json:"min_buy_in"`
	MaxBuyIn     int        `json:"max_buy_in"`
	NumSeats     int        `json:"num_seats"`
	OwnerPresent bool       `json:"owner_present"`
	Seats        []SeatView `json:"seats"`
}

// Project renders the table for the given viewer
func (t *Table) Project(viewerID string) View {
	v := View{
		Phase:        t.Phase().String(),
		Dealer:       t.dealer,
		Turn:         -1,
		Community:    []string{},
		SmallBlind:   t.cfg.SmallBlind,
		BigBlind:     t.cfg.BigBlind,
		MinBuyIn:     t.cfg.MinBuyIn,
		MaxBuyIn:     t.cfg.MaxBuyIn,
		NumSeats:     NumSeats,
		OwnerPresent: t.owner != "",
	}

	h := t.hand
	if h != nil {
		v.Pot = h.pot
		v.Turn = h.turn
		v.Community = cardCodes(h.community)
		if h.phase.Betting() {
			v.MinRaise = h.minRaise
		}
	}

	for i, p := range t.seats {
		if p == nil {
			continue
		}
		sv := SeatView{Seat: i, Name: p.Name, Stack: p.Stack}
		// The hand ledger belongs to the client the cards were dealt to.
		// A client seated into a slot vacated mid-hand inherits none of it.
		if h != nil && h.dealtIn(i) && h.dealtTo[i] == p.ClientID {
			sv.Bet = h.bets[i]
			sv.Contribution = h.contrib[i]
			sv.Folded = h.folded[i]
			sv.AllIn = !h.folded[i] && p.Stack == 0
			sv.Cards = t.holeCardsFor(viewerID, i)
		}
		v.Seats = append(v.Seats, sv)
	}
	return v
}

// holeCardsFor applies the visibility rule: a seat's cards are real only
// to the client they were dealt to; everyone else sees placeholders until
// a contested showdown reveals the non-folded hands.
func (t *Table) holeCardsFor(viewerID string, seat int) []string {
	h := t.hand
	own := h.dealtTo[seat] == viewerID
	revealed := h.phase == Showdown && h.revealed && !h.folded[seat]
	if own || revealed {
		return []string{h.hole[seat][0].Code(), h.hole[seat][1].Code()}
	}
	return []string{"??", "??"}
}
