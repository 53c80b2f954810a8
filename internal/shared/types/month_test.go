package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input string
		want  time.Month
	}{
		{"1", time.January},
		{"12", time.December},
		{"january", time.January},
		{"January", time.January},
		{"JANUARY", time.January},
		{"JanUaRY", time.January},
		{"jan", time.January},
		{"SEP", time.September},
		{" march ", time.March},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonthInvalid(t *testing.T) {
	for _, input := range []string{"0", "13", "-1", "janeiro", "m1", ""} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMonth(input)
			assert.Error(t, err)
		})
	}
}
