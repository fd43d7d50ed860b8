package cli

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/tacogips/altadder/internal/app"
)

// scriptedPrompter answers prompts from a fixed script.
type scriptedPrompter struct {
	t       *testing.T
	answers []string
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		p.t.Fatal("prompt script exhausted")
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Input(message, help string) (string, error) {
	return p.next()
}

func (p *scriptedPrompter) Select(message string, options []string) (string, error) {
	return p.next()
}

type abortingPrompter struct{}

func (abortingPrompter) Input(string, string) (string, error) { return "", errPromptAborted }
func (abortingPrompter) Select(string, []string) (string, error) { return "", errPromptAborted }

func TestBrowse(t *testing.T) {
	env := setup(t)
	var stderrBuf strings.Builder
	stdout, stderr = &strings.Builder{}, &stderrBuf
	t.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })

	p := &scriptedPrompter{t: t, answers: []string{
		env.sourceURL,
		actionCopyShare,
		actionBack,
		"",
		env.brokenURL,
		env.sourceURL,
		actionCopySource,
		actionQuit,
	}}

	sess := newSession()
	if err := browse(context.Background(), sess, p, "https://altadder.example.com/"); err != nil {
		t.Fatalf("browse() error = %v", err)
	}

	if len(p.answers) != 0 {
		t.Errorf("unused answers: %v", p.answers)
	}
	if env.clipboard.text != env.sourceURL {
		t.Errorf("clipboard = %q, want source URL", env.clipboard.text)
	}
	errOut := stderrBuf.String()
	for _, want := range []string{"please enter a source URL", "failed to parse source"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
	if sess.State() != app.Displaying {
		t.Errorf("state = %v, want Displaying", sess.State())
	}
}

func TestBrowse_Aborted(t *testing.T) {
	setup(t)
	err := browse(context.Background(), newSession(), abortingPrompter{}, defaultShareBase)
	if err != errPromptAborted {
		t.Errorf("browse() error = %v, want errPromptAborted", err)
	}
}
