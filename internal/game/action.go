package game

// Phase represents where the table is in the hand lifecycle
type Phase int

const (
	Idle Phase = iota
	Preflop
	Flop
	Turn
	River
	Showdown
)

// String returns the string representation of a phase
func (p Phase) String() string {
	return [...]string{"idle", "preflop", "flop", "turn", "river", "showdown"}[p]
}

// Betting reports whether the phase accepts player actions
func (p Phase) Betting() bool {
	return p >= Preflop && p <= River
}

// ActionType represents a player action
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

// String returns the string representation of an action type
func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ParseActionType maps a wire tag to an action type. The set of variants
// is closed; unknown tags are rejected.
func ParseActionType(s string) (ActionType, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "bet":
		return Bet, nil
	case "raise":
		return Raise, nil
	case "allin":
		return AllIn, nil
	default:
		return 0, ErrUnknownAction
	}
}

// Action is a player action with its amount, where applicable. For Bet and
// Raise the amount is the increment above the current bet to match, not
// the total committed.
type Action struct {
	Type   ActionType
	Amount int
}
