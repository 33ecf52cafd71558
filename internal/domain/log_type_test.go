package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogType(t *testing.T) {
	tests := []struct {
		in   string
		want LogType
		ok   bool
	}{
		{"", LogTypeIn, true},
		{"in", LogTypeIn, true},
		{" OUT ", LogTypeOut, true},
		{"BREAK", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLogType(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestLogType_Wording(t *testing.T) {
	assert.Equal(t, "check in", LogTypeIn.Action())
	assert.Equal(t, "check-out", LogTypeOut.Hyphenated())
}
