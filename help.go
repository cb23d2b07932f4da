package cmdhelp

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/napalu/cmdhelp/errs"
	"github.com/napalu/cmdhelp/getopt"
	"github.com/napalu/cmdhelp/i18n"
	"github.com/napalu/cmdhelp/internal/messages"
	"github.com/napalu/cmdhelp/types"
	orderedmap "github.com/wk8/go-ordered-map"
)

// New returns an empty Help document using the getopt resolver, the default renderer and
// the embedded English messages.
func New() *Help {
	bundle := i18n.Default()
	h := &Help{
		options:  orderedmap.New(),
		resolver: getopt.NewResolver(),
		bundle:   bundle,
		lang:     bundle.GetDefaultLanguage(),
		eol:      DefaultLineTerminator,
	}
	h.renderer = NewRenderer(h)

	return h
}

// NewWith allows initialization of Help using option functions. The caller should always
// test for error on return because Help will be nil when a configuration fails.
//
// Configuration example:
//
//	help, err := NewWith(
//		WithSummary("Deploys the current build"),
//		WithUsage("[options] <target>"),
//		WithOption("f,force", "Overwrite an existing deployment"),
//		WithOption("e,env:", "Target environment"))
func NewWith(configs ...ConfigureHelpFunc) (*Help, error) {
	h := New()
	if err := h.Set(configs...); err != nil {
		return nil, err
	}

	return h, nil
}

// Set applies configs in order and stops at the first failing one
func (h *Help) Set(configs ...ConfigureHelpFunc) error {
	var err error
	for _, config := range configs {
		config(h, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// SetOptions replaces the option declarations. Declaration order is kept; a spec declared
// twice keeps its first position and its last description.
func (h *Help) SetOptions(specs ...types.OptionSpec) {
	h.options = orderedmap.New()
	for _, s := range specs {
		h.options.Set(s.Spec, s.Descr)
	}
}

// AddOption adds an option declaration, or replaces the description of an existing one
func (h *Help) AddOption(spec, descr string) {
	h.options.Set(spec, descr)
}

// Options returns a copy of the option declarations in declaration order
func (h *Help) Options() []types.OptionSpec {
	specs := make([]types.OptionSpec, 0, h.options.Len())
	for pair := h.options.Oldest(); pair != nil; pair = pair.Next() {
		specs = append(specs, types.OptionSpec{
			Spec:  pair.Key.(string),
			Descr: pair.Value.(string),
		})
	}

	return specs
}

// SetSummary sets the single-line summary
func (h *Help) SetSummary(summary string) {
	h.summary = summary
}

// Summary returns the single-line summary
func (h *Help) Summary() string {
	return h.summary
}

// SetUsage sets the usage line(s). Each line holds the arguments only; the command name is
// prepended when rendering. Calling SetUsage without arguments clears the usage.
func (h *Help) SetUsage(usage ...string) {
	if len(usage) == 0 {
		h.usage = nil
		return
	}

	h.usage = append(make([]string, 0, len(usage)), usage...)
}

// Usage returns a copy of the usage lines
func (h *Help) Usage() []string {
	return append([]string(nil), h.usage...)
}

// SetDescr sets the long-form description
func (h *Help) SetDescr(descr string) {
	h.descr = descr
}

// Descr returns the long-form description
func (h *Help) Descr() string {
	return h.descr
}

// SetResolver replaces the option resolver
func (h *Help) SetResolver(resolver Resolver) {
	h.resolver = resolver
}

// SetRenderer replaces the section renderer. The renderer must read this document, as one
// returned by NewRenderer(h) does.
func (h *Help) SetRenderer(renderer Renderer) {
	h.renderer = renderer
}

// Resolve resolves every option declaration in declaration order
func (h *Help) Resolve() []types.Option {
	opts := make([]types.Option, 0, h.options.Len())
	for pair := h.options.Oldest(); pair != nil; pair = pair.Next() {
		opts = append(opts, h.resolver.Resolve(pair.Key.(string), pair.Value.(string)))
	}

	return opts
}

// Render returns the help text for the command called name: the summary, usage,
// description and options sections in that order, each omitted when it has no content.
// Trailing whitespace is removed and exactly one line terminator is appended. When every
// section is empty the "No help available." message is returned instead.
func (h *Help) Render(name string) string {
	var sb strings.Builder
	sb.WriteString(h.renderer.Summary(name))
	sb.WriteString(h.renderer.Usage(name))
	sb.WriteString(h.renderer.Description())
	sb.WriteString(h.renderer.Options())

	text := strings.TrimRightFunc(sb.String(), unicode.IsSpace)
	if text == "" {
		text = h.message(messages.MsgNoHelpKey)
	}

	return text + h.eol
}

// Fprint writes the help text for name to w
func (h *Help) Fprint(w io.Writer, name string) error {
	_, err := io.WriteString(w, h.Render(name))
	return err
}

// Validate resolves every option declaration and reports the ones Render would have to
// normalise: declarations the resolver rejects, records without a name and records whose
// parameter type is not none, optional or required. Render itself never fails; an unknown
// parameter type is rendered as if the option took no value.
func (h *Help) Validate() error {
	strict, isStrict := h.resolver.(StrictResolver)

	var all []error
	for pair := h.options.Oldest(); pair != nil; pair = pair.Next() {
		spec, descr := pair.Key.(string), pair.Value.(string)

		var opt types.Option
		if isStrict {
			var err error
			if opt, err = strict.Parse(spec, descr); err != nil {
				all = append(all, errs.ErrInvalidOption.WithArgs(spec).Wrap(err))
				continue
			}
		} else {
			opt = h.resolver.Resolve(spec, descr)
		}

		switch {
		case opt.Name == "":
			all = append(all, errs.ErrInvalidOption.WithArgs(spec).Wrap(errs.ErrEmptyOptionSpec))
		case !opt.Param.IsValid():
			all = append(all, errs.ErrInvalidOption.WithArgs(opt.Name).Wrap(errs.ErrUnknownParamType.WithArgs(int(opt.Param))))
		}
	}

	return errors.Join(all...)
}

func (h *Help) message(key string) string {
	if h.bundle.HasKey(h.lang, key) {
		return h.bundle.TL(h.lang, key)
	}

	return i18n.Default().TL(h.lang, key)
}
