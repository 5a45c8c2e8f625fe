package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, 3723, Encode(1, 2, 3))
	assert.Equal(t, 0, Encode(0, 0, 0))
	assert.Equal(t, MaxTotal, Encode(23, 59, 59))
	assert.Equal(t, 86399, MaxTotal)
	// No clamping.
	assert.Equal(t, 24*3600+60, Encode(24, 0, 60))
}

func TestEncodeDecompose_RoundTripAllTriples(t *testing.T) {
	for h := 0; h <= MaxHours; h++ {
		for m := 0; m <= MaxMinutes; m++ {
			for s := 0; s <= MaxSeconds; s++ {
				total := Encode(h, m, s)
				got := Decompose(total)
				if got != (Parts{h, m, s}) {
					t.Fatalf("Decompose(Encode(%d,%d,%d)) = %+v", h, m, s, got)
				}
				if !got.Valid() {
					t.Fatalf("parts %+v reported invalid", got)
				}
			}
		}
	}
}

func TestDecompose_EveryTotal(t *testing.T) {
	for total := 0; total <= MaxTotal; total++ {
		p := Decompose(total)
		if p.Total() != total || !p.Valid() {
			t.Fatalf("Decompose(%d) = %+v", total, p)
		}
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "3723s", FormatSeconds(3723))
	assert.Equal(t, "0s", FormatSeconds(0))
	assert.Equal(t, "01h 02m 03s", Decompose(3723).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3723", 3723},
		{" 0 ", 0},
		{"1h2m3s", 3723},
		{"90s", 90},
		{"1.5s", 1},
		{"25m", 1500},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "-1m", "1x"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidDuration, "input %q", in)
	}
}
