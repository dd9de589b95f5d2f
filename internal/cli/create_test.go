package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/new-component/internal/config"
	errUtils "github.com/agentx-labs/new-component/internal/errors"
)

type harness struct {
	app    *app
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &harness{
		app: &app{
			locations: locationsFor(t),
			fs:        afero.NewOsFs(),
			out:       out,
			errOut:    errOut,
		},
		out:    out,
		errOut: errOut,
	}
}

func locationsFor(t *testing.T) config.Locations {
	t.Helper()
	return config.Locations{Home: t.TempDir(), Project: t.TempDir()}
}

func (h *harness) run(args ...string) error {
	h.out.Reset()
	h.errOut.Reset()
	return h.app.execute(args)
}

func TestCreateComponent(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()

	err := h.run("Button", "--dir", parent, "--formatter", "none")
	require.NoError(t, err)

	dir := filepath.Join(parent, "Button")
	for _, f := range []string{"Button.js", "Button.data.js", "Button.md", "index.js"} {
		data, err := os.ReadFile(filepath.Join(dir, f))
		require.NoError(t, err, f)
		assert.NotContains(t, string(data), "COMPONENT_NAME", f)
		assert.Contains(t, string(data), "Button", f)
	}

	out := h.out.String()
	assert.Contains(t, out, "Creating the Button component")
	assert.Contains(t, out, "Directory:  "+dir)
	assert.Contains(t, out, "✓ Directory created.")
	assert.Contains(t, out, "✓ Component created.")
	assert.Contains(t, out, "✓ Data created.")
	assert.Contains(t, out, "✓ Doc created.")
	assert.Contains(t, out, "✓ Index created.")
	assert.Contains(t, out, "4 files written to "+dir)
	assert.Empty(t, h.errOut.String())
}

func TestCreateMissingName(t *testing.T) {
	h := newHarness(t)

	err := h.run("--dir", t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errUtils.ErrMissingName))
	assert.Equal(t, 0, errUtils.GetExitCode(err))
	assert.Contains(t, h.out.String(), "Creating the")
	assert.Contains(t, h.errOut.String(), "component name is required")
	assert.Contains(t, h.errOut.String(), "new-component <name>")
}

func TestCreateInvalidName(t *testing.T) {
	for _, name := range []string{"..", "nested/Button", `win\Button`} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			parent := t.TempDir()

			err := h.run(name, "--dir", parent)

			assert.True(t, errors.Is(err, errUtils.ErrInvalidName), "got %v", err)
			assert.Equal(t, 0, errUtils.GetExitCode(err))
			entries, _ := os.ReadDir(parent)
			assert.Empty(t, entries)
		})
	}
}

func TestCreateUsesNameAsGiven(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()

	require.NoError(t, h.run("Button ", "--dir", parent, "--formatter", "none"))

	assert.FileExists(t, filepath.Join(parent, "Button ", "Button .js"))
	assert.NoDirExists(t, filepath.Join(parent, "Button"))
}

func TestCreateMissingParent(t *testing.T) {
	h := newHarness(t)
	parent := filepath.Join(t.TempDir(), "src", "components")

	err := h.run("Button", "--dir", parent)

	assert.True(t, errors.Is(err, errUtils.ErrParentDirNotFound))
	assert.Equal(t, 0, errUtils.GetExitCode(err))
	assert.Equal(t, 1, strings.Count(h.errOut.String(), parent))
	assert.Equal(t, 1, strings.Count(h.errOut.String(), "Error creating component."))
	_, statErr := os.Stat(filepath.Dir(parent))
	assert.True(t, os.IsNotExist(statErr), "nothing may be created")
}

func TestCreateTwice(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()

	require.NoError(t, h.run("Button", "--dir", parent, "--formatter", "none"))
	before, err := os.ReadFile(filepath.Join(parent, "Button", "Button.js"))
	require.NoError(t, err)

	err = h.run("Button", "--dir", parent, "--formatter", "none")

	assert.True(t, errors.Is(err, errUtils.ErrComponentExists))
	assert.Equal(t, 0, errUtils.GetExitCode(err))
	assert.Contains(t, h.errOut.String(), filepath.Join(parent, "Button"))
	assert.NotContains(t, h.out.String(), "✓")

	after, err := os.ReadFile(filepath.Join(parent, "Button", "Button.js"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCreateUsesConfiguredDir(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()
	writeConfig(t, h.app.locations.Project, `{"dir": "`+filepath.ToSlash(parent)+`", "formatter": "none"}`)

	require.NoError(t, h.run("Card"))

	assert.DirExists(t, filepath.Join(parent, "Card"))
}

func TestCreateFlagBeatsConfiguredDir(t *testing.T) {
	h := newHarness(t)
	configured := t.TempDir()
	flagged := t.TempDir()
	writeConfig(t, h.app.locations.Project, `{"dir": "`+filepath.ToSlash(configured)+`", "formatter": "none"}`)

	require.NoError(t, h.run("Card", "-d", flagged))

	assert.DirExists(t, filepath.Join(flagged, "Card"))
	assert.NoDirExists(t, filepath.Join(configured, "Card"))
}

func TestCreateStyledTemplate(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()

	require.NoError(t, h.run("Card", "-d", parent, "-t", "react-styled", "--formatter", "none"))

	assert.FileExists(t, filepath.Join(parent, "Card", "Card.styles.js"))
	assert.Contains(t, h.out.String(), "✓ Styles created.")
	assert.Contains(t, h.out.String(), "5 files written to")
}

func TestCreateUnknownTemplate(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()

	err := h.run("Card", "-d", parent, "-t", "angular")

	assert.True(t, errors.Is(err, errUtils.ErrUnknownTemplateSet))
	assert.Equal(t, 0, errUtils.GetExitCode(err))
	assert.Contains(t, h.errOut.String(), "available template sets: react, react-styled")
	assert.NoDirExists(t, filepath.Join(parent, "Card"))
}

func TestCreateKeepsTemplateCommentsUnderEveryEngine(t *testing.T) {
	for _, engine := range []string{"prettier", "esbuild", "none"} {
		t.Run(engine, func(t *testing.T) {
			h := newHarness(t)
			parent := t.TempDir()

			require.NoError(t, h.run("Button", "-d", parent, "--formatter", engine))

			component, err := os.ReadFile(filepath.Join(parent, "Button", "Button.js"))
			require.NoError(t, err)
			assert.Contains(t, string(component), "@see Button.md for details")
			assert.Contains(t, string(component), "Displays the component")
			assert.Contains(t, string(component), "Button.data")

			// Markdown is never formatted.
			doc, err := os.ReadFile(filepath.Join(parent, "Button", "Button.md"))
			require.NoError(t, err)
			assert.Contains(t, string(doc), "import Button from './Button';")
		})
	}
}

func TestCreateFailedWriteIsReportedWithExitZero(t *testing.T) {
	h := newHarness(t)
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/src/components", 0755))
	h.app.fs = afero.NewReadOnlyFs(mem)

	err := h.run("Button", "-d", "/src/components", "--formatter", "none")

	require.Error(t, err)
	assert.False(t, errUtils.IsUserError(err))
	assert.Equal(t, 0, errUtils.GetExitCode(err))
	assert.Contains(t, h.errOut.String(), "creating component directory")
}

func TestUnknownFlag(t *testing.T) {
	h := newHarness(t)

	err := h.run("Button", "--colour")

	require.Error(t, err)
	assert.Equal(t, 1, errUtils.GetExitCode(err))
}

func TestVerboseLogsConfigSources(t *testing.T) {
	h := newHarness(t)
	parent := t.TempDir()
	path := writeConfig(t, h.app.locations.Home, `{"formatter": "none"}`)

	require.NoError(t, h.run("Button", "-d", parent, "--verbose"))

	assert.Contains(t, h.errOut.String(), "resolved configuration")
	assert.Contains(t, h.errOut.String(), path)
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".new-component-config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
