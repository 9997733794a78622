package game

// Pot is a main or side pot with the seats that can win it. Folded seats'
// chips stay in the pot they were committed to, but the seats drop out of
// Eligible.
type Pot struct {
	Amount   int
	Eligible []int
}

// BuildPots layers per-seat hand contributions into an ordered list of
// pots. Each iteration peels off the smallest remaining contribution as a
// layer shared by every seat still owing chips, so seats that went all-in
// short cap their exposure at their own contribution level.
//
// A layer whose contributors all folded carries its chips forward into the
// next layer; if no layer follows, the chips leave play and are returned
// as forfeited.
func BuildPots(contributions []int, eligible []bool) (pots []Pot, forfeited int) {
	rem := make([]int, len(contributions))
	copy(rem, contributions)

	var layers []Pot
	for {
		m := 0
		contributing := 0
		for _, r := range rem {
			if r <= 0 {
				continue
			}
			contributing++
			if m == 0 || r < m {
				m = r
			}
		}
		if contributing == 0 {
			break
		}

		pot := Pot{Amount: m * contributing}
		for i, r := range rem {
			if r <= 0 {
				continue
			}
			rem[i] -= m
			if eligible[i] {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		layers = append(layers, pot)
	}

	carry := 0
	for _, p := range layers {
		p.Amount += carry
		carry = 0
		if len(p.Eligible) == 0 {
			carry = p.Amount
			continue
		}
		pots = append(pots, p)
	}
	return pots, carry
}
