package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	for _, code := range []string{"As", "Kh", "Td", "2c", "9s", "Qd", "Jc"} {
		c, err := Parse(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.Code())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, code := range []string{"", "A", "1s", "Ax", "10h", "as"} {
		_, err := Parse(code)
		assert.Error(t, err, "expected %q to be rejected", code)
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("Zz") })
}

func TestRankOrdering(t *testing.T) {
	assert.Equal(t, 0, int(Two))
	assert.Equal(t, 12, int(Ace))
	assert.True(t, Ace > King)
	assert.True(t, Three > Two)
}

func TestCardJSON(t *testing.T) {
	c := MustParse("Qh")
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"Qh"`, string(b))

	var back Card
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, back)
}
