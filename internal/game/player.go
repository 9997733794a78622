package game

// Player occupies a seat at the table. Stack is mutated only by the
// engine during hand processing or at (re-)seating; transport code never
// adjusts it directly.
type Player struct {
	ClientID string
	Name     string
	Stack    int
}
