package game

// ErrKind is a recoverable validation failure. The string is the exact
// wire tag delivered in the command ack, so clients can switch on it.
type ErrKind string

func (e ErrKind) Error() string { return string(e) }

const (
	ErrNotSeated         ErrKind = "not-seated"
	ErrNotOwner          ErrKind = "not-owner"
	ErrNotYourTurn       ErrKind = "not-your-turn"
	ErrAlreadyFolded     ErrKind = "already-folded"
	ErrInvalidSeat       ErrKind = "invalid-seat"
	ErrSeatOccupied      ErrKind = "seat-occupied"
	ErrNoUsername        ErrKind = "no-username"
	ErrNotEnoughPlayers  ErrKind = "not-enough-players"
	ErrNotInBettingPhase ErrKind = "not-in-betting-phase"
	ErrInvalidAmount     ErrKind = "invalid-amount"
	ErrRaiseBelowMin     ErrKind = "raise-below-minimum"
	ErrInsufficientChips ErrKind = "insufficient-chips"
	ErrCannotCheck       ErrKind = "cannot-check"
	ErrUnknownAction     ErrKind = "unknown-action"
	ErrHandInProgress    ErrKind = "hand-in-progress"
)
