package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSeat(v View, seat int) (SeatView, bool) {
	for _, sv := range v.Seats {
		if sv.Seat == seat {
			return sv, true
		}
	}
	return SeatView{}, false
}

func TestProjectShowsOnlyOwnHoleCards(t *testing.T) {
	tbl := threePlayerTable(t, [3]int{1000, 1000, 1000})
	require.NoError(t, tbl.StartHand("c0"))

	v := tbl.Project("c0")
	own, ok := findSeat(v, 0)
	require.True(t, ok)
	require.Len(t, own.Cards, 2)
	assert.NotContains(t, own.Cards, "??")

	for _, seat := range []int{1, 2} {
		other, ok := findSeat(v, seat)
		require.True(t, ok)
		assert.Equal(t, []string{"??", "??"}, other.Cards)
	}
}

func TestProjectSpectatorSeesNoHoleCards(t *testing.T) {
	tbl := threePlayerTable(t, [3]int{1000, 1000, 1000})
	require.NoError(t, tbl.StartHand("c0"))

	v := tbl.Project("spectator")
	for _, sv := range v.Seats {
		assert.Equal(t, []string{"??", "??"}, sv.Cards)
	}
}

func TestReseatedSlotInheritsNoHandState(t *testing.T) {
	tbl := threePlayerTable(t, [3]int{1000, 1000, 1000})
	require.NoError(t, tbl.StartHand("c0"))

	// Alice stands mid-hand and dave takes her slot while the hand is
	// still live. The dead hand's hole cards and betting ledger belong to
	// alice and must not surface for the slot's new occupant, to him or
	// to anyone else.
	require.NoError(t, tbl.Stand("c0"))
	mustSit(t, tbl, "c9", "dave", 0, 600)

	for _, viewer := range []string{"c9", "c1", "spectator"} {
		v := tbl.Project(viewer)
		sv, ok := findSeat(v, 0)
		require.True(t, ok)
		assert.Empty(t, sv.Cards, "viewer %s saw cards on a reseated slot", viewer)
		assert.False(t, sv.Folded)
		assert.Zero(t, sv.Bet)
		assert.Zero(t, sv.Contribution)
		assert.Equal(t, 600, sv.Stack)
	}

	// Dave was not dealt in, so the hand never gives him a turn.
	assert.ErrorIs(t, tbl.Act("c9", Action{Type: Check}), ErrAlreadyFolded)
}

func TestProjectIdleTable(t *testing.T) {
	tbl := newTestTable()
	mustSit(t, tbl, "c0", "alice", 0, 500)

	v := tbl.Project("c0")
	assert.Equal(t, "idle", v.Phase)
	assert.Equal(t, -1, v.Turn)
	assert.Empty(t, v.Community)
	assert.Equal(t, 0, v.Pot)

	sv, ok := findSeat(v, 0)
	require.True(t, ok)
	assert.Empty(t, sv.Cards)
	assert.Equal(t, 500, sv.Stack)
}

func TestProjectSerializesCleanly(t *testing.T) {
	tbl := threePlayerTable(t, [3]int{1000, 1000, 1000})
	require.NoError(t, tbl.StartHand("c0"))

	b, err := json.Marshal(tbl.Project("c1"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "preflop", decoded["phase"])
	assert.Contains(t, decoded, "seats")
}
