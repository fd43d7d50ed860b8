package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/tacogips/altadder/internal/view"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Badge       lipgloss.Style
	Label       lipgloss.Style
	Link        lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Placeholder lipgloss.Style
}

// PlainStyles renders text without any ANSI sequences.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title:       s,
		Subtitle:    s,
		Badge:       s,
		Label:       s,
		Link:        s,
		Muted:       s,
		Error:       s,
		Success:     s,
		Warning:     s,
		Placeholder: s,
	}
}

// ColorStyles is the default colored palette.
func ColorStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0a0")),
		Badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#1a7f37")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafd7")),
		Link:        lipgloss.NewStyle().Underline(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd75f")),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#808080")),
	}
}

// ColorEnabled reports whether w is a terminal and color was not disabled.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Terminal renders presentation models as text.
type Terminal struct {
	styles Styles
}

// NewTerminal creates a Terminal, colored when color is true.
func NewTerminal(color bool) *Terminal {
	if color {
		return &Terminal{styles: ColorStyles()}
	}
	return &Terminal{styles: PlainStyles()}
}

// Styles returns the active styles.
func (t *Terminal) Styles() Styles {
	return t.styles
}

// Source renders a displayed source. shareLink is omitted when empty.
func (t *Terminal) Source(pm view.PresentationModel, shareLink string) string {
	var b strings.Builder
	st := t.styles

	title := st.Title.Render(pm.Name)
	if pm.Trusted {
		title += " " + st.Badge.Render(" Trusted ")
	}
	b.WriteString(title + "\n")
	if pm.Subtitle != "" {
		b.WriteString(st.Subtitle.Render(pm.Subtitle) + "\n")
	}
	b.WriteString(st.Muted.Render(pm.SourceURL) + "\n")

	if pm.Description != "" {
		b.WriteString("\n" + pm.Description + "\n")
	}
	if pm.Website != nil {
		b.WriteString("\n" + st.Label.Render("Website:") + " " + st.Link.Render(pm.Website.Label) + "\n")
	}

	b.WriteString("\n" + t.Links(pm.DeepLinks))
	if shareLink != "" {
		b.WriteString("\n" + st.Label.Render("Share:") + " " + st.Link.Render(shareLink) + "\n")
	}

	b.WriteString("\n" + st.Title.Render("Apps") + "\n")
	if pm.Placeholder != "" {
		b.WriteString(st.Placeholder.Render(pm.Placeholder) + "\n")
		return b.String()
	}
	for _, app := range pm.Apps {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			st.Title.Render(app.Name),
			st.Muted.Render(app.Developer),
			st.Label.Render(app.VersionLabel))
		if app.Subtitle != "" {
			b.WriteString("    " + st.Subtitle.Render(app.Subtitle) + "\n")
		}
	}
	return b.String()
}

// Links renders deep links one per line.
func (t *Terminal) Links(links []view.DeepLink) string {
	var b strings.Builder
	for _, l := range links {
		b.WriteString(t.styles.Label.Render(l.Label+":") + " " + t.styles.Link.Render(l.URL) + "\n")
	}
	return b.String()
}

// Cards renders trusted source cards.
func (t *Terminal) Cards(cards []view.Card) string {
	if len(cards) == 0 {
		return t.styles.Placeholder.Render("No trusted sources available") + "\n"
	}
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(t.styles.Title.Render(c.Name))
		if c.Subtitle != "" {
			b.WriteString("  " + t.styles.Subtitle.Render(c.Subtitle))
		}
		b.WriteString("\n  " + t.styles.Muted.Render(c.URL) + "\n")
	}
	return b.String()
}
