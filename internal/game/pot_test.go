package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func potSum(pots []Pot) int {
	sum := 0
	for _, p := range pots {
		sum += p.Amount
	}
	return sum
}

func TestBuildPotsSinglePot(t *testing.T) {
	contrib := []int{100, 100, 100, 0, 0, 0}
	eligible := []bool{true, true, true, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	require.Len(t, pots, 1)
	assert.Equal(t, 0, forfeited)
	assert.Equal(t, 300, pots[0].Amount)
	assert.Equal(t, []int{0, 1, 2}, pots[0].Eligible)
}

func TestBuildPotsShortAllInLayers(t *testing.T) {
	// Seat 0 all-in for 100, seats 1 and 2 each in for 200.
	contrib := []int{100, 200, 200, 0, 0, 0}
	eligible := []bool{true, true, true, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	require.Len(t, pots, 2)
	assert.Equal(t, 0, forfeited)

	assert.Equal(t, 300, pots[0].Amount)
	assert.Equal(t, []int{0, 1, 2}, pots[0].Eligible)

	assert.Equal(t, 200, pots[1].Amount)
	assert.Equal(t, []int{1, 2}, pots[1].Eligible)
}

func TestBuildPotsThreeLayers(t *testing.T) {
	// A < B < C all-in levels: pots are 3A, 2(B-A), C-B.
	contrib := []int{50, 120, 300, 0, 0, 0}
	eligible := []bool{true, true, true, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	require.Len(t, pots, 3)
	assert.Equal(t, 0, forfeited)
	assert.Equal(t, 150, pots[0].Amount)
	assert.Equal(t, 140, pots[1].Amount)
	assert.Equal(t, 180, pots[2].Amount)
	assert.Equal(t, potSum(pots), 50+120+300)
}

func TestBuildPotsFoldedChipsStayIn(t *testing.T) {
	// Seat 1 folded after contributing; its chips stay in the pot but it
	// cannot win them.
	contrib := []int{100, 60, 100, 0, 0, 0}
	eligible := []bool{true, false, true, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	require.Len(t, pots, 2)
	assert.Equal(t, 0, forfeited)
	assert.Equal(t, 180, pots[0].Amount)
	assert.Equal(t, []int{0, 2}, pots[0].Eligible)
	assert.Equal(t, 80, pots[1].Amount)
	assert.Equal(t, []int{0, 2}, pots[1].Eligible)
}

func TestBuildPotsEmptyLayerCarriesForward(t *testing.T) {
	// The deepest contributor folded, so the overage layer has no eligible
	// winner and no later layer to carry into. Those chips leave play.
	contrib := []int{100, 250, 0, 0, 0, 0}
	eligible := []bool{true, false, false, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	require.Len(t, pots, 1)
	assert.Equal(t, 200, pots[0].Amount)
	assert.Equal(t, []int{0}, pots[0].Eligible)
	assert.Equal(t, 150, forfeited)
}

func TestBuildPotsFoldedDeepStack(t *testing.T) {
	contrib := []int{50, 100, 150, 0, 0, 0}
	eligible := []bool{true, false, true, false, false, false}

	pots, forfeited := BuildPots(contrib, eligible)
	assert.Equal(t, 0, forfeited)
	assert.Equal(t, potSum(pots), 300)

	// Layers are 150 (all three), 100 (seats 1 and 2), 50 (seat 2 alone).
	// Seat 1's folded chips sit in the first two layers.
	require.Len(t, pots, 3)
	assert.Equal(t, []int{0, 2}, pots[0].Eligible)
	assert.Equal(t, []int{2}, pots[1].Eligible)
	assert.Equal(t, []int{2}, pots[2].Eligible)
}

func TestBuildPotsNoContributions(t *testing.T) {
	pots, forfeited := BuildPots(make([]int, NumSeats), make([]bool, NumSeats))
	assert.Empty(t, pots)
	assert.Equal(t, 0, forfeited)
}
