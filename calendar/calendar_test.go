package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metonic/calendar"
	"github.com/katalvlaran/metonic/cyclic"
)

// TestToMetonic_Fixtures verifies the attested anchor points around the
// epoch and the cycle boundaries.
func TestToMetonic_Fixtures(t *testing.T) {
	cases := []struct {
		year, cycle, pos int
	}{
		{-431, 1, 1},  // first year of Meton's cycle
		{-430, 1, 2},  // second year
		{-413, 1, 19}, // last year of cycle 1
		{-412, 2, 1},  // first year of cycle 2
		{-261, 9, 19},
		{-260, 10, 1},
	}
	for _, tc := range cases {
		cycle, pos := calendar.ToMetonic(tc.year)
		assert.Equal(t, tc.cycle, cycle, "cycle of year %d", tc.year)
		assert.Equal(t, tc.pos, pos, "position of year %d", tc.year)
	}
}

// TestToMetonic_BeforeEpoch verifies floor-division behavior for years
// before the epoch: cycle numbers go to zero and below, positions stay in
// 1..19.
func TestToMetonic_BeforeEpoch(t *testing.T) {
	cycle, pos := calendar.ToMetonic(-432)
	assert.Equal(t, 0, cycle, "the year before the epoch closes cycle 0")
	assert.Equal(t, 19, pos)

	cycle, pos = calendar.ToMetonic(-431 - 19)
	assert.Equal(t, 0, cycle)
	assert.Equal(t, 1, pos)

	cycle, pos = calendar.ToMetonic(-431 - 20)
	assert.Equal(t, -1, cycle)
	assert.Equal(t, 19, pos)
}

// TestFromMetonic_Fixtures verifies the inverse anchors and the position
// sentinel.
func TestFromMetonic_Fixtures(t *testing.T) {
	year, err := calendar.FromMetonic(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -431, year)

	year, err = calendar.FromMetonic(9, 19)
	require.NoError(t, err)
	assert.Equal(t, -261, year)

	year, err = calendar.FromMetonic(10, 1)
	require.NoError(t, err)
	assert.Equal(t, -260, year)

	_, err = calendar.FromMetonic(1, 0)
	assert.ErrorIs(t, err, calendar.ErrPosition)

	_, err = calendar.FromMetonic(1, 20)
	assert.ErrorIs(t, err, calendar.ErrPosition)
}

// TestMetonic_RoundTrip verifies fromMetonic∘toMetonic == identity over a
// wide span straddling the epoch, BCE included.
func TestMetonic_RoundTrip(t *testing.T) {
	for year := -2000; year <= 2100; year++ {
		cycle, pos := calendar.ToMetonic(year)
		require.GreaterOrEqual(t, pos, 1)
		require.LessOrEqual(t, pos, calendar.CycleLength)

		back, err := calendar.FromMetonic(cycle, pos)
		require.NoError(t, err)
		require.Equal(t, year, back, "round trip broke at year %d", year)
	}
}

// TestCycles_DefaultSet verifies the cached cycle set and that the
// attested Athenian pattern is a rotation of exactly one member.
func TestCycles_DefaultSet(t *testing.T) {
	cycles, err := calendar.Cycles()
	require.NoError(t, err)
	require.Len(t, cycles, 3)
	for _, c := range cycles {
		assert.Len(t, c, calendar.CycleLength)
	}

	matches := cyclic.FindInCycles(calendar.Athens, cycles)
	assert.Equal(t, []string{"0010010010100100101"}, matches,
		"Athens is a rotation of exactly one canonical cycle")

	assert.Empty(t, cyclic.FindInCycles("11", cycles),
		"no rule-compliant cycle intercalates twice in a row")
}

// TestCycles_ReturnsCopy verifies that mutating a returned set does not
// poison the cache.
func TestCycles_ReturnsCopy(t *testing.T) {
	first, err := calendar.Cycles()
	require.NoError(t, err)
	first[0] = "tampered"

	second, err := calendar.Cycles()
	require.NoError(t, err)
	assert.Equal(t, "0010010010010010101", second[0], "cache unaffected by caller mutation")
}
