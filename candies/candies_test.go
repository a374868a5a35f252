package candies_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzles/candies"
	"github.com/katalvlaran/lvpuzzles/internal/fixture"
)

type kidsCase struct {
	Name    string `yaml:"name"`
	Candies []int  `yaml:"candies"`
	Extra   int    `yaml:"extra"`
	Want    []bool `yaml:"want"`
}

// TestKidsWithCandies_Fixtures runs the table in testdata/kids_with_candies.yaml.
func TestKidsWithCandies_Fixtures(t *testing.T) {
	for _, tc := range fixture.Load[kidsCase](t, "kids_with_candies.yaml") {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := candies.KidsWithCandies(tc.Candies, tc.Extra)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Errorf("KidsWithCandies(%v, %d) mismatch (-want +got):\n%s", tc.Candies, tc.Extra, diff)
			}
		})
	}
}

// TestKidsWithCandies_Empty verifies the empty-input precondition is reported.
func TestKidsWithCandies_Empty(t *testing.T) {
	got, err := candies.KidsWithCandies(nil, 3)
	assert.ErrorIs(t, err, candies.ErrEmptyInput)
	assert.Nil(t, got)

	_, err = candies.KidsWithCandies([]int{}, 0)
	assert.ErrorIs(t, err, candies.ErrEmptyInput)
}

// TestKidsWithCandies_InputUntouched ensures the caller's slice is not modified.
func TestKidsWithCandies_InputUntouched(t *testing.T) {
	in := []int{2, 3, 5, 1, 3}
	_, err := candies.KidsWithCandies(in, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 1, 3}, in)
}

// TestMax covers the maximum helper.
func TestMax(t *testing.T) {
	most, err := candies.Max([]int{3, 9, -2, 9})
	require.NoError(t, err)
	assert.Equal(t, 9, most)

	most, err = candies.Max([]int{-4})
	require.NoError(t, err)
	assert.Equal(t, -4, most)

	_, err = candies.Max(nil)
	assert.ErrorIs(t, err, candies.ErrEmptyInput)
}

// TestKidsWithCandies_MaxAlwaysTrue checks that whoever already holds the
// maximum is always eligible, whatever extra is.
func TestKidsWithCandies_MaxAlwaysTrue(t *testing.T) {
	in := []int{4, 8, 1, 8, 0}
	for _, extra := range []int{0, 1, 5, 100} {
		got, err := candies.KidsWithCandies(in, extra)
		require.NoError(t, err)
		assert.True(t, got[1], "extra=%d", extra)
		assert.True(t, got[3], "extra=%d", extra)
	}
}
