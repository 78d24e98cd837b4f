package cliargs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scalar-collections/internal/cliargs"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "joined runs",
			args: []string{"-input", "my", "templates", "-output", "gen", "out"},
			want: []string{"--input=my templates", "--output=gen out"},
		},
		{
			name: "double dash and other flags",
			args: []string{"--input", "t", "--no-format", "--output", "o", "--log-level", "debug"},
			want: []string{"--input=t", "--no-format", "--output=o", "--log-level", "debug"},
		},
		{
			name: "missing value",
			args: []string{"-input", "-output", "o"},
			want: []string{"--input=", "--output=o"},
		},
		{
			name: "already joined",
			args: []string{"--input=a b", "--output", "c"},
			want: []string{"--input=a b", "--output=c"},
		},
		{
			name: "leading positional tokens",
			args: []string{"generate", "-input", "a"},
			want: []string{"generate", "--input=a"},
		},
		{
			name: "trailing command joins the last run",
			args: []string{"-input", "a", "-output", "b", "kinds"},
			want: []string{"--input=a", "--output=b kinds"},
		},
		{
			name: "command before the runs",
			args: []string{"kinds", "-input", "a"},
			want: []string{"kinds", "--input=a"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cliargs.Normalize(tt.args, "input", "output"))
		})
	}
}
