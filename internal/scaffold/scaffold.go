package scaffold

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	errUtils "github.com/agentx-labs/new-component/internal/errors"
	"github.com/agentx-labs/new-component/internal/format"
)

// Permissions of generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// State is the progress of a generation run.
type State int

const (
	NotStarted State = iota
	DirectoryCreated
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case DirectoryCreated:
		return "directory-created"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RunContext holds the per-invocation inputs.
type RunContext struct {
	Name      string // e.g., "Button"
	ParentDir string // e.g., "src/components"
}

// ComponentDir returns the directory the run creates.
func (rc RunContext) ComponentDir() string {
	return filepath.Join(rc.ParentDir, rc.Name)
}

// Result holds the outcome of a generation. On failure it lists the files
// written before the failing step; they are not removed.
type Result struct {
	ComponentDir string
	Files        []string
	State        State
}

// Generator renders template sets onto a filesystem.
type Generator struct {
	fs        afero.Fs
	templates afero.Fs
	format    format.Func
	progress  func(string)
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the destination filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) { g.fs = fs }
}

// WithTemplates replaces the embedded template tree.
func WithTemplates(fsys fs.FS) Option {
	return func(g *Generator) { g.templates = afero.FromIOFS{FS: fsys} }
}

// WithFormatter sets the formatter applied to descriptors marked Format.
func WithFormatter(f format.Func) Option {
	return func(g *Generator) { g.format = f }
}

// WithProgress registers a callback receiving a line after each step.
func WithProgress(fn func(string)) Option {
	return func(g *Generator) { g.progress = fn }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:        afero.NewOsFs(),
		templates: afero.FromIOFS{FS: Templates()},
		format:    func(src string) string { return src },
		progress:  func(string) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Preflight checks that the parent directory exists and the component
// directory does not. Failures are user errors.
func (g *Generator) Preflight(rc RunContext) error {
	ok, err := afero.DirExists(g.fs, rc.ParentDir)
	if err != nil {
		return errors.Wrapf(err, "checking parent directory %s", rc.ParentDir)
	}
	if !ok {
		return errUtils.UserError(
			errors.Wrapf(errUtils.ErrParentDirNotFound, "%s", rc.ParentDir),
			"Create the parent components directory first, or point --dir at an existing one.")
	}

	dir := rc.ComponentDir()
	exists, err := afero.Exists(g.fs, dir)
	if err != nil {
		return errors.Wrapf(err, "checking component directory %s", dir)
	}
	if exists {
		return errUtils.UserError(
			errors.Wrapf(errUtils.ErrComponentExists, "%s", dir),
			"Delete that directory, or choose another name, and try again.")
	}
	return nil
}

// Generate creates the component directory and writes every file of set in
// order. It stops at the first failure.
func (g *Generator) Generate(set TemplateSet, rc RunContext) (*Result, error) {
	res := &Result{ComponentDir: rc.ComponentDir()}

	if err := g.fs.Mkdir(res.ComponentDir, DirPerm); err != nil {
		res.State = Aborted
		return res, errors.Wrapf(err, "creating component directory %s", res.ComponentDir)
	}
	res.State = DirectoryCreated
	g.progress("Directory created.")

	for _, d := range set.Files {
		out, err := g.render(set, d, rc)
		if err != nil {
			res.State = Aborted
			return res, err
		}
		res.Files = append(res.Files, out)
		g.progress(d.Label)
	}

	res.State = Completed
	return res, nil
}

// render runs one read/substitute/format/write step and returns the written
// path.
func (g *Generator) render(set TemplateSet, d Descriptor, rc RunContext) (string, error) {
	src := path.Join(set.Dir, d.Source)
	raw, err := afero.ReadFile(g.templates, src)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "reading template %s", src), errUtils.ErrTemplateMissing)
	}

	text := Substitute(string(raw), rc.Name)
	if d.Format {
		text = g.format(text)
	}

	dest := filepath.Join(rc.ComponentDir(), d.Destination(rc.Name))
	if err := afero.WriteFile(g.fs, dest, []byte(text), FilePerm); err != nil {
		return "", errors.Wrapf(err, "writing %s", dest)
	}
	return dest, nil
}

// Substitute replaces every occurrence of Placeholder in text with name.
func Substitute(text, name string) string {
	return strings.ReplaceAll(text, Placeholder, name)
}
