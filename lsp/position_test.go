package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/protocol"
)

func TestOffsetForPosition(t *testing.T) {
	t.Parallel()

	content := "SELECT *\nFROM cpu\nWHERE host = 'a'"

	tests := []struct {
		name string
		pos  protocol.Position
		want int
	}{
		{"start", protocol.Position{Line: 0, Character: 0}, 0},
		{"mid first line", protocol.Position{Line: 0, Character: 7}, 7},
		{"start of second line", protocol.Position{Line: 1, Character: 0}, 9},
		{"mid second line", protocol.Position{Line: 1, Character: 5}, 14},
		{"third line", protocol.Position{Line: 2, Character: 6}, 24},
		{"character past line end clamps", protocol.Position{Line: 0, Character: 99}, 8},
		{"line past document clamps", protocol.Position{Line: 42, Character: 0}, len(content)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, offsetForPosition(content, tt.pos))
		})
	}
}

func TestExtractPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cp", extractPrefix("SELECT * FROM cp"))
	assert.Equal(t, "", extractPrefix("SELECT * FROM "))
	assert.Equal(t, "usage_idle", extractPrefix("usage_idle"))
}

func TestWordAt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SELECT", wordAt("SELECT * FROM cpu", 3))
	assert.Equal(t, "cpu", wordAt("SELECT * FROM cpu", 17))
	assert.Equal(t, "", wordAt("SELECT * FROM cpu", 7))
}
