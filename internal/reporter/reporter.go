// Package reporter prints the console messages of a run: an intro banner, one
// line per completed step, a closing summary, and errors with their hints.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/agentx-labs/new-component/internal/branding"
	errUtils "github.com/agentx-labs/new-component/internal/errors"
	"github.com/agentx-labs/new-component/internal/logger"
)

const filesWritten = "%d files written to %s."

var (
	gold     = lipgloss.Color("#FFD700")
	blue     = lipgloss.Color("#4E9CFF")
	green    = lipgloss.Color("#32CD32")
	red      = lipgloss.Color("#FF5555")
	darkGray = lipgloss.Color("#585858")
	midGray  = lipgloss.Color("#8A8A8A")
)

type styles struct {
	name, path, rule, check, success, muted lipgloss.Style
	errTitle, errBody, hint                 lipgloss.Style
}

// Reporter writes progress to out and errors to errOut. Colours are only
// emitted when the respective writer is a terminal.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	s       styles
	printer *message.Printer
}

// New creates a Reporter.
func New(out, errOut io.Writer) *Reporter {
	o := lipgloss.NewRenderer(out)
	e := lipgloss.NewRenderer(errOut)

	return &Reporter{
		out:    out,
		errOut: errOut,
		s: styles{
			name:     o.NewStyle().Bold(true).Foreground(gold),
			path:     o.NewStyle().Bold(true).Foreground(blue),
			rule:     o.NewStyle().Foreground(darkGray),
			check:    o.NewStyle().Foreground(green),
			success:  o.NewStyle().Bold(true).Foreground(green),
			muted:    o.NewStyle().Foreground(midGray),
			errTitle: e.NewStyle().Bold(true).Foreground(red),
			errBody:  e.NewStyle().Foreground(red),
			hint:     e.NewStyle().Foreground(midGray),
		},
		printer: newPrinter(),
	}
}

// messages builds the catalog holding the plural forms of the summary line.
func messages() (*catalog.Builder, error) {
	b := catalog.NewBuilder()
	err := b.Set(language.English, filesWritten, plural.Selectf(1, "",
		plural.One, "%[1]d file written to %[2]s.",
		plural.Other, "%[1]d files written to %[2]s."))
	if err != nil {
		return nil, errors.Wrap(err, "building message catalog")
	}
	return b, nil
}

func newPrinter() *message.Printer {
	b, err := messages()
	if err != nil {
		logger.Warn("printing summaries without plural forms", "err", err)
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(language.English, message.Catalog(b))
}

// Intro announces the component about to be created.
func (r *Reporter) Intro(name, dir, template string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "✨  Creating the %s component ✨\n", r.s.name.Render(name))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Directory:  %s\n", r.s.path.Render(dir))
	if template != "" {
		fmt.Fprintf(r.out, "Template:   %s\n", r.s.path.Render(template))
	}
	fmt.Fprintln(r.out, r.s.rule.Render(strings.Repeat("=", 41)))
	fmt.Fprintln(r.out)
}

// ItemCompleted prints a checkmark line for a finished step.
func (r *Reporter) ItemCompleted(text string) {
	fmt.Fprintf(r.out, "%s %s\n", r.s.check.Render("✓"), text)
}

// Conclusion closes a successful run.
func (r *Reporter) Conclusion(dir string, files int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.s.success.Render("Component created!"))
	fmt.Fprintln(r.out, r.s.muted.Render(r.printer.Sprintf(filesWritten, files, dir)))
	fmt.Fprintln(r.out, r.s.muted.Render("Thanks for using "+branding.DisplayName()+"."))
	fmt.Fprintln(r.out)
}

// Error prints a failed component creation and its hints as one block on
// the error stream.
func (r *Reporter) Error(err error) {
	r.failure("Error creating component.", err)
}

// CommandError prints a failure of the named subcommand.
func (r *Reporter) CommandError(command string, err error) {
	r.failure("Error running "+command+".", err)
}

func (r *Reporter) failure(title string, err error) {
	if err == nil {
		return
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.s.errTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(r.s.errBody.Render(err.Error()))
	b.WriteString("\n")
	for _, h := range errUtils.Hints(err) {
		b.WriteString(r.s.hint.Render("  " + h))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	io.WriteString(r.errOut, b.String())
}
