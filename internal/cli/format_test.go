package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessageLine(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"empty", "", "\r\n"},
		{"short", "ABC", "ABC\r\n"},
		{"exact group", "ABCDE", "ABCDE\r\n"},
		{"two groups", "ABCDEFGHIJ", "ABCDE FGHIJ\r\n"},
		{"ragged tail", "EZQOZMTZDTSRHWTSOERXXYO", "EZQOZ MTZDT SRHWT SOERX XYO\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMessageLine(tt.msg))
		})
	}
}

func TestStripBlanks(t *testing.T) {
	assert.Equal(t, "HELLOWORLD", StripBlanks("HELLO WORLD"))
	assert.Equal(t, "AB", StripBlanks(" A\tB "))
	assert.Equal(t, "", StripBlanks(" \t "))
}
