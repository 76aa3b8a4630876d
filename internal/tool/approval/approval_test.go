package approval

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"y\r\n", true},
		{"y", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{" y\n", false},
		{"y \n", false},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.line, "\n", `\n`), func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmative(tt.line))
		})
	}
}

func TestConsole_Approve(t *testing.T) {
	req := Request{Tool: "write_file", Summary: "Write 5 bytes to /tmp/a.txt", Detail: "hello"}

	t.Run("affirmative", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("y\n"), &out)

		ok, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "write_file: Write 5 bytes to /tmp/a.txt\nhello\n\n"+Prompt, out.String())
	})

	t.Run("decline", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("n\n"), &out)

		ok, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty line declines", func(t *testing.T) {
		c := NewConsole(strings.NewReader("\n"), io.Discard)

		ok, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("end of input declines", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), io.Discard)

		ok, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("answer without newline at end of input", func(t *testing.T) {
		c := NewConsole(strings.NewReader("Y"), io.Discard)

		ok, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("one line per call", func(t *testing.T) {
		c := NewConsole(strings.NewReader("y\nn\n"), io.Discard)

		first, err := c.Approve(context.Background(), req)
		require.NoError(t, err)
		second, err := c.Approve(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
	})

	t.Run("no detail", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("y\n"), &out)

		_, err := c.Approve(context.Background(), Request{Tool: "run_shell", Summary: "Run ls"})
		require.NoError(t, err)
		assert.Equal(t, "run_shell: Run ls\n\n"+Prompt, out.String())
	})

	t.Run("read error", func(t *testing.T) {
		c := NewConsole(failingReader{}, io.Discard)

		_, err := c.Approve(context.Background(), req)
		assert.Error(t, err)
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestScripted(t *testing.T) {
	s := NewScripted("y", "nope")

	ok, err := s.Approve(context.Background(), Request{Tool: "a"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Approve(context.Background(), Request{Tool: "b"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Approve(context.Background(), Request{Tool: "c"})
	assert.ErrorIs(t, err, ErrNoAnswer)

	assert.Equal(t, []Request{{Tool: "a"}, {Tool: "b"}, {Tool: "c"}}, s.Requests())
}

func TestAlways(t *testing.T) {
	ok, err := Always(true).Approve(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Always(false).Approve(context.Background(), Request{})
	require.NoError(t, err)
	assert.False(t, ok)
}
