package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBoard executes the CLI against the embedded dataset and returns stdout.
func runBoard(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATA_SOURCE", "static")
	t.Setenv("DATA_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPeopleCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr bool
	}{
		{name: "all", args: []string{"people"}, want: []string{"ID", "Noma", "Kahari", "Maya", "XZNSEI"}},
		{name: "role", args: []string{"people", "--role", "meme lord"}, want: []string{"Noma", "XZNSEI"}, notWant: []string{"Kahari"}},
		{name: "query", args: []string{"people", "-q", "MAYA"}, want: []string{"@aztec_maya"}, notWant: []string{"Noma"}},
		{name: "no match", args: []string{"people", "-q", "nobody"}, want: []string{"No contributors match your filters yet."}},
		{name: "unknown role", args: []string{"people", "--role", "Wizard"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runBoard(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestAwardsCmd(t *testing.T) {
	t.Run("default role", func(t *testing.T) {
		out, err := runBoard(t, "awards")
		require.NoError(t, err)
		assert.Contains(t, out, "Town Hall #10")
		assert.Contains(t, out, "@XZNSEI")
		assert.Contains(t, out, "@0x_nazo")
		assert.NotContains(t, out, "@ment0san")
	})

	t.Run("one town hall", func(t *testing.T) {
		out, err := runBoard(t, "awards", "--role", "High Attester", "--town-hall", "9")
		require.NoError(t, err)
		assert.Contains(t, out, "@Jlvlartin")
		assert.NotContains(t, out, "Town Hall #10")
	})

	t.Run("role never awarded", func(t *testing.T) {
		out, err := runBoard(t, "awards", "-r", "Bug Hunter")
		require.NoError(t, err)
		assert.Contains(t, out, "No Bug Hunter awarded at this Town Hall.")
	})

	t.Run("role All", func(t *testing.T) {
		out, err := runBoard(t, "awards", "-r", "All")
		require.NoError(t, err)
		assert.Contains(t, out, "Pick a role")
	})

	t.Run("negative town hall", func(t *testing.T) {
		_, err := runBoard(t, "awards", "-t", "-1")
		require.Error(t, err)
	})
}

func TestWhoisCmd(t *testing.T) {
	out, err := runBoard(t, "whois", "@memEMANlabs")
	require.NoError(t, err)
	assert.Contains(t, out, "Noma")
	assert.Contains(t, out, "https://x.com/MemeManLabs")
	assert.Contains(t, out, "6 images")

	_, err = runBoard(t, "whois", "ghost")
	require.ErrorContains(t, err, `no contributor with handle "ghost"`)
}

func TestDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := `roles: [Bug Hunter]
contributors:
  - id: x1
    display_name: Solo
    twitter: solo_dev
    roles: [Bug Hunter]
town_halls: []
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("GO_ENV", "production")
	t.Setenv("DATA_SOURCE", "static")
	t.Setenv("DATA_FILE", path)
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"people"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Solo")
	assert.NotContains(t, out.String(), "Noma")
}
