package cmdhelp

import (
	"github.com/napalu/cmdhelp/i18n"
	"github.com/napalu/cmdhelp/types"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// Resolver turns a compact option declaration (e.g. "f,foo:") and its description into an
// option record. Help calls Resolve once per declared option, in declaration order, each
// time help is rendered.
type Resolver interface {
	Resolve(spec, descr string) types.Option
}

// StrictResolver is implemented by resolvers able to report malformed declarations.
// Help.Validate prefers Parse over Resolve when it is available.
type StrictResolver interface {
	Resolver
	Parse(spec, descr string) (types.Option, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface
type ResolverFunc func(spec, descr string) types.Option

// Resolve calls f(spec, descr)
func (f ResolverFunc) Resolve(spec, descr string) types.Option {
	return f(spec, descr)
}

// Renderer produces the individual sections of a help text. Every method returns an
// empty string when its section has no content.
type Renderer interface {
	Summary(name string) string
	Usage(name string) string
	Description() string
	Options() string
	Option(opt types.Option) string
	OptionParam(token string, param types.ParamType, multi bool) string
}

// ConfigureHelpFunc is used when defining Help documents. It doubles as the construction
// hook of specialised commands: a command factory passes its own ConfigureHelpFunc values
// to NewWith to obtain a pre-filled document.
type ConfigureHelpFunc func(help *Help, err *error)

// DefaultLineTerminator ends every rendered line
const DefaultLineTerminator = "\n"

const (
	indent      = "    "
	descrIndent = indent + indent
)

// Help holds the summary, usage lines, long description and option declarations of a
// single command. Configure it once, then render it as often as needed; rendering does not
// mutate the document and is therefore safe for concurrent use.
type Help struct {
	summary  string
	usage    []string
	descr    string
	options  *orderedmap.OrderedMap // spec -> description
	resolver Resolver
	renderer Renderer
	bundle   *i18n.Bundle
	lang     language.Tag
	eol      string
}
