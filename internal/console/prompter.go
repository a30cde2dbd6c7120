package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts with Ctrl+C
var ErrInterrupted = errors.New("operation cancelled by user")

// Prompter asks a single free-text question. io.EOF means input ended.
type Prompter interface {
	Ask(ctx context.Context, message string) (string, error)
}

// NewPrompter returns a SurveyPrompter when stdin and stdout are terminals,
// and a LinePrompter over stdin otherwise
func NewPrompter() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return &SurveyPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// SurveyPrompter asks through an interactive survey input
type SurveyPrompter struct{}

// Ask implements Prompter
func (p *SurveyPrompter) Ask(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ErrInterrupted
	}

	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = Indent
	}))
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

type lineResult struct {
	text string
	err  error
}

// LinePrompter reads answers line by line through readline, for piped input
// and dumb terminals
type LinePrompter struct {
	in  io.Reader
	out io.Writer
	rl  *readline.Instance

	// pending holds the read outstanding from a cancelled Ask; the next Ask
	// receives its line instead of starting another read
	pending chan lineResult
	eof     bool
}

// NewLinePrompter creates a prompter reading in and echoing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out}
}

func (p *LinePrompter) instance() (*readline.Instance, error) {
	if p.rl != nil {
		return p.rl, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  io.NopCloser(p.in),
		Stdout:                 p.out,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		FuncIsTerminal:         func() bool { return false },
		FuncMakeRaw:            func() error { return nil },
		FuncExitRaw:            func() error { return nil },
		FuncGetWidth:           func() int { return 80 },
		FuncOnWidthChanged:     func(func()) {},
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	p.rl = rl
	return rl, nil
}

// Ask implements Prompter. Once input ends every later call returns io.EOF.
func (p *LinePrompter) Ask(ctx context.Context, message string) (string, error) {
	if p.eof {
		return "", io.EOF
	}
	rl, err := p.instance()
	if err != nil {
		return "", err
	}

	fmt.Fprint(p.out, Indent+message+" ")

	if p.pending == nil {
		p.pending = make(chan lineResult, 1)
		go func(results chan<- lineResult) {
			line, err := rl.Readline()
			results <- lineResult{text: line, err: err}
		}(p.pending)
	}

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res := <-p.pending:
		p.pending = nil
		switch {
		case errors.Is(res.err, readline.ErrInterrupt):
			return "", ErrInterrupted
		case errors.Is(res.err, io.EOF):
			p.eof = true
			return "", io.EOF
		}
		return res.text, res.err
	}
}
