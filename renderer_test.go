package cmdhelp

import (
	"strings"
	"testing"

	"github.com/napalu/cmdhelp/types"
	"github.com/stretchr/testify/assert"
)

func TestOptionParam(t *testing.T) {
	r := NewRenderer(New())

	tests := []struct {
		name     string
		token    string
		param    types.ParamType
		multi    bool
		expected string
	}{
		{"short none", "-f", types.ParamNone, false, "-f"},
		{"long none", "--foo", types.ParamNone, false, "--foo"},
		{"short required", "-f", types.ParamRequired, false, "-f <value>"},
		{"long required", "--foo", types.ParamRequired, false, "--foo=<value>"},
		{"short optional", "-f", types.ParamOptional, false, "-f [<value>]"},
		{"long optional", "--foo", types.ParamOptional, false, "--foo[=<value>]"},
		{"short none multi", "-v", types.ParamNone, true, "-v [-v [...]]"},
		{"short required multi", "-D", types.ParamRequired, true, "-D <value> [-D <value> [...]]"},
		{"long required multi", "--define", types.ParamRequired, true, "--define=<value> [--define=<value> [...]]"},
		{"long optional multi", "--foo", types.ParamOptional, true, "--foo[=<value>] [--foo[=<value>] [...]]"},
		{"single character is long", "f", types.ParamRequired, false, "f=<value>"},
		{"three characters are long", "-ab", types.ParamOptional, false, "-ab[=<value>]"},
		{"unknown param short", "-f", types.ParamType(42), false, "-f"},
		{"unknown param long multi", "--foo", types.ParamType(-1), true, "--foo [--foo [...]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.OptionParam(tt.token, tt.param, tt.multi))
		})
	}
}

func TestOptionParam_Properties(t *testing.T) {
	r := NewRenderer(New())
	tokens := []string{"-a", "-Z", "--all", "--x", "-xy", "--a-very-long-option"}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, token, r.OptionParam(token, types.ParamNone, false))

			required := r.OptionParam(token, types.ParamRequired, false)
			optional := r.OptionParam(token, types.ParamOptional, false)
			if types.IsShort(token) {
				assert.True(t, strings.HasSuffix(required, " <value>"))
				assert.Equal(t, token+" [<value>]", optional)
			} else {
				assert.True(t, strings.HasSuffix(required, "=<value>"))
				assert.Equal(t, token+"[=<value>]", optional)
			}

			for _, param := range []types.ParamType{types.ParamNone, types.ParamOptional, types.ParamRequired} {
				expr := r.OptionParam(token, param, false)
				assert.Equal(t, expr+" ["+expr+" [...]]", r.OptionParam(token, param, true))
			}
		})
	}
}

func TestOption(t *testing.T) {
	r := NewRenderer(New())

	t.Run("name and alias", func(t *testing.T) {
		out := r.Option(types.Option{Name: "-f", Alias: "--foo", Param: types.ParamRequired, Descr: "Foo flag"})
		assert.Equal(t, "    -f <value>\n    --foo=<value>\n        Foo flag\n", out)
	})

	t.Run("name only", func(t *testing.T) {
		out := r.Option(types.Option{Name: "--bar", Param: types.ParamOptional, Descr: "Bar"})
		assert.Equal(t, "    --bar[=<value>]\n        Bar\n", out)
	})

	t.Run("description is trimmed", func(t *testing.T) {
		out := r.Option(types.Option{Name: "-q", Descr: "\t quiet  \n"})
		assert.Equal(t, "    -q\n        quiet\n", out)
	})

	t.Run("missing description", func(t *testing.T) {
		assert.Equal(t, "    -q\n        No description.\n", r.Option(types.Option{Name: "-q"}))
		assert.Equal(t, "    -q\n        No description.\n", r.Option(types.Option{Name: "-q", Descr: "   "}))
	})
}

func TestSections(t *testing.T) {
	t.Run("empty document renders no sections", func(t *testing.T) {
		r := NewRenderer(New())
		assert.Empty(t, r.Summary("cmd"))
		assert.Empty(t, r.Usage("cmd"))
		assert.Empty(t, r.Description())
		assert.Empty(t, r.Options())
	})

	t.Run("summary", func(t *testing.T) {
		h := New()
		h.SetSummary("does things")
		assert.Equal(t, "<<bold>>SUMMARY<<reset>>\n    <<bold>>cmd<<reset>> -- does things\n\n", NewRenderer(h).Summary("cmd"))
	})

	t.Run("usage", func(t *testing.T) {
		h := New()
		h.SetUsage("<a>", "<b> <c>")
		assert.Equal(t,
			"<<bold>>USAGE<<reset>>\n    <<ul>>cmd<<reset>> <a>\n    <<ul>>cmd<<reset>> <b> <c>\n\n",
			NewRenderer(h).Usage("cmd"))
	})

	t.Run("description", func(t *testing.T) {
		h := New()
		h.SetDescr("\n  Long text.  \n")
		assert.Equal(t, "<<bold>>DESCRIPTION<<reset>>\n    Long text.\n\n", NewRenderer(h).Description())
	})

	t.Run("options end with a blank line", func(t *testing.T) {
		h := New()
		h.AddOption("q", "quiet")
		assert.Equal(t, "<<bold>>OPTIONS<<reset>>\n    -q\n        quiet\n\n", NewRenderer(h).Options())
	})
}
