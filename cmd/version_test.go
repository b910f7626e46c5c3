package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "skeletor version\t")
	assert.Contains(t, out.String(), "remote template\tthephpleague/skeleton")
}

func TestVersionLines(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want []string
	}{
		{
			name: "no build info",
			want: []string{"skeletor version\tunknown", "go version\tunknown", "remote template\tthephpleague/skeleton"},
		},
		{
			name: "release build",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v1.2.0"}},
			want: []string{"skeletor version\tv1.2.0", "go version\tgo1.25.1", "remote template\tthephpleague/skeleton"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLines(tt.info))
		})
	}
}
