package format

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/evanw/esbuild/pkg/api"
)

// ErrCommentsDropped is returned when a reprint lost comments of the input.
var ErrCommentsDropped = errors.New("formatter dropped comments")

// ESBuild reprints JavaScript through esbuild's transform API, in process.
// JSX is preserved. esbuild keeps only legal comments, so a reprint that
// would lose any comment is refused and the input is kept as written.
// prettierConfig does not apply to this engine.
type ESBuild struct{}

// Format implements Formatter.
func (ESBuild) Format(src string) (string, error) {
	res := api.Transform(src, api.TransformOptions{
		Loader:        api.LoaderJSX,
		JSX:           api.JSXPreserve,
		Charset:       api.CharsetUTF8,
		LegalComments: api.LegalCommentsInline,
	})
	if len(res.Errors) > 0 {
		msgs := make([]string, 0, len(res.Errors))
		for _, m := range res.Errors {
			msgs = append(msgs, m.Text)
		}
		return "", errors.Newf("esbuild: %s", strings.Join(msgs, "; "))
	}

	out := string(res.Code)
	if in, kept := commentMarkers(src), commentMarkers(out); kept < in {
		return "", errors.Wrapf(ErrCommentsDropped, "esbuild kept %d of %d", kept, in)
	}
	return out, nil
}

// commentMarkers counts block and line comment openers in src.
func commentMarkers(src string) int {
	return strings.Count(src, "/*") + strings.Count(src, "//")
}
