package format

import (
	"github.com/cockroachdb/errors"

	"github.com/agentx-labs/new-component/internal/failopen"
)

// Engine names a formatting backend.
type Engine string

const (
	EnginePrettier Engine = "prettier"
	EngineESBuild  Engine = "esbuild"
	EngineNone     Engine = "none"
)

// Engines lists the supported engines in display order.
func Engines() []Engine {
	return []Engine{EnginePrettier, EngineESBuild, EngineNone}
}

// ErrUnknownEngine is reported (and swallowed) for unsupported engine names.
var ErrUnknownEngine = errors.New("unknown formatter engine")

// Settings selects and configures a formatter.
type Settings struct {
	Engine       Engine
	PrettierPath string // executable name or path; "prettier" when empty
	Prettier     PrettierOptions
}

// Func formats source text. It always returns usable text.
type Func func(src string) string

// Formatter is a fallible formatting backend.
type Formatter interface {
	Format(src string) (string, error)
}

// New returns a Func for s. Failures of the backend fall back to the
// unformatted input.
func New(s Settings) Func {
	f := backend(s)
	return func(src string) string {
		out, err := f.Format(src)
		return failopen.Or(out, err, src, "formatting skipped", "engine", s.Engine)
	}
}

func backend(s Settings) Formatter {
	switch s.Engine {
	case EnginePrettier, "":
		return &Prettier{Bin: s.PrettierPath, Options: s.Prettier}
	case EngineESBuild:
		return ESBuild{}
	case EngineNone:
		return identity{}
	default:
		return failing{err: errors.Wrapf(ErrUnknownEngine, "%q", s.Engine)}
	}
}

type identity struct{}

func (identity) Format(src string) (string, error) { return src, nil }

type failing struct{ err error }

func (f failing) Format(string) (string, error) { return "", f.err }
