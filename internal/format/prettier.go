package format

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// PrettierOptions mirrors the prettierConfig block of the override files.
// Keys are lower-cased because they arrive through viper. Nil pointers and
// zero values leave prettier's own default in place.
type PrettierOptions struct {
	PrintWidth     int    `mapstructure:"printwidth" yaml:"printWidth,omitempty"`
	TabWidth       int    `mapstructure:"tabwidth" yaml:"tabWidth,omitempty"`
	UseTabs        *bool  `mapstructure:"usetabs" yaml:"useTabs,omitempty"`
	Semi           *bool  `mapstructure:"semi" yaml:"semi,omitempty"`
	SingleQuote    *bool  `mapstructure:"singlequote" yaml:"singleQuote,omitempty"`
	JSXSingleQuote *bool  `mapstructure:"jsxsinglequote" yaml:"jsxSingleQuote,omitempty"`
	BracketSpacing *bool  `mapstructure:"bracketspacing" yaml:"bracketSpacing,omitempty"`
	TrailingComma  string `mapstructure:"trailingcomma" yaml:"trailingComma,omitempty"`
	ArrowParens    string `mapstructure:"arrowparens" yaml:"arrowParens,omitempty"`
}

// Args converts the options into prettier CLI flags.
func (o PrettierOptions) Args() []string {
	args := []string{"--parser", "babel"}
	if o.PrintWidth > 0 {
		args = append(args, "--print-width", strconv.Itoa(o.PrintWidth))
	}
	if o.TabWidth > 0 {
		args = append(args, "--tab-width", strconv.Itoa(o.TabWidth))
	}
	args = appendBool(args, o.UseTabs, "--use-tabs", "")
	args = appendBool(args, o.Semi, "", "--no-semi")
	args = appendBool(args, o.SingleQuote, "--single-quote", "")
	args = appendBool(args, o.JSXSingleQuote, "--jsx-single-quote", "")
	args = appendBool(args, o.BracketSpacing, "", "--no-bracket-spacing")
	if o.TrailingComma != "" {
		args = append(args, "--trailing-comma", o.TrailingComma)
	}
	if o.ArrowParens != "" {
		args = append(args, "--arrow-parens", o.ArrowParens)
	}
	return args
}

func appendBool(args []string, v *bool, on, off string) []string {
	switch {
	case v == nil:
	case *v && on != "":
		args = append(args, on)
	case !*v && off != "":
		args = append(args, off)
	}
	return args
}

// Prettier formats through the prettier executable, feeding the source on
// stdin.
type Prettier struct {
	Bin     string
	Options PrettierOptions
}

// Format implements Formatter.
func (p *Prettier) Format(src string) (string, error) {
	bin := p.Bin
	if bin == "" {
		bin = "prettier"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", errors.Wrapf(err, "locating %s", bin)
	}

	cmd := exec.Command(path, p.Options.Args()...)
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "running %s: %s", bin, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
