package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRating(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 10\n", 10, false},
		{"8/10", 8, false},
		{"I'd say 9 out of 10!", 9, false},
		{"7.5", 7, false},
		{"Rating: 42", 10, false},
		{"0", 1, false},
		{"-3", 1, false},
		{"", NeutralRating, true},
		{"amazing, truly", NeutralRating, true},
		{"99999999999999999999999", NeutralRating, true},
	}
	for _, tc := range cases {
		got, err := ParseRating(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrRatingUnparsable, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
		}
	}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 7.5, AverageRating(7, 8))
	assert.Equal(t, 5.0, AverageRating(5, 5))
}
