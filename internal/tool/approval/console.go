package approval

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Prompt is written after the preview, followed by reading one line.
const Prompt = "Does that look good [y/N]? "

var (
	toolStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("241")).
			PaddingLeft(1)
)

// Console asks the operator on a line-oriented terminal.
type Console struct {
	mu     sync.Mutex
	in     *bufio.Reader
	out    io.Writer
	styled bool
}

// NewConsole creates a Console reading answers from in and writing previews to out.
// Previews are styled only when out is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styled: styled,
	}
}

// Approve shows the preview and blocks until one line of input arrives. It does not
// observe ctx: the prompt waits for the operator. End of input is a decline.
func (c *Console) Approve(_ context.Context, req Request) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := io.WriteString(c.out, c.render(req)+"\n"+Prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the terminal tidy when input ends without a newline.
		_, _ = io.WriteString(c.out, "\n")
	}
	return IsAffirmative(line), nil
}

func (c *Console) render(req Request) string {
	header := req.Tool + ": " + req.Summary
	detail := strings.TrimRight(req.Detail, "\n")
	if c.styled {
		header = toolStyle.Render(req.Tool) + ": " + req.Summary
		if detail != "" {
			detail = detailStyle.Render(detail)
		}
	}
	if detail == "" {
		return header + "\n"
	}
	return header + "\n" + detail + "\n"
}

// IsAffirmative reports whether one line of operator input means yes. Only "y" or "Y"
// (line terminator removed) counts; everything else, including empty input, is no.
func IsAffirmative(line string) bool {
	return strings.EqualFold(strings.TrimRight(line, "\r\n"), "y")
}
