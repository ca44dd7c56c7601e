package completion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chenqi92/inflowave/completion"
)

func TestExtractTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single bare table",
			text: "SELECT * FROM cpu",
			want: []string{"cpu"},
		},
		{
			name: "quoted table",
			text: `SELECT * FROM "cpu load"`,
			want: []string{"cpu load"},
		},
		{
			name: "from and join",
			text: `SELECT * FROM "cpu" JOIN mem ON cpu.host = mem.host`,
			want: []string{"cpu", "mem"},
		},
		{
			name: "comma separated list",
			text: "SELECT * FROM cpu, mem, disk",
			want: []string{"cpu", "mem", "disk"},
		},
		{
			name: "into target",
			text: "SELECT * INTO downsampled FROM cpu",
			want: []string{"downsampled", "cpu"},
		},
		{
			name: "dotted reference resolves to last component",
			text: `SELECT * FROM "telegraf"."autogen"."cpu"`,
			want: []string{"cpu"},
		},
		{
			name: "duplicates collapse preserving first order",
			text: "SELECT * FROM cpu; SELECT * FROM mem, cpu",
			want: []string{"cpu", "mem"},
		},
		{
			name: "no tables",
			text: "SHOW DATABASES",
			want: nil,
		},
		{
			name: "trailing from",
			text: "SELECT * FROM ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, completion.ExtractTables(tt.text))
		})
	}
}
