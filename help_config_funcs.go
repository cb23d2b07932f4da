package cmdhelp

import (
	"strings"

	"github.com/napalu/cmdhelp/errs"
	"github.com/napalu/cmdhelp/i18n"
	"github.com/napalu/cmdhelp/types"
	"golang.org/x/text/language"
)

// WithSummary sets the single-line summary shown next to the command name
func WithSummary(summary string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetSummary(summary)
	}
}

// WithUsage sets one or more usage lines
func WithUsage(usage ...string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetUsage(usage...)
	}
}

// WithDescr sets the long-form description
func WithDescr(descr string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetDescr(descr)
	}
}

// WithOption declares a single option. The spec is resolved when help is rendered.
func WithOption(spec, descr string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.AddOption(spec, descr)
	}
}

// WithOptions replaces all option declarations
func WithOptions(specs ...types.OptionSpec) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetOptions(specs...)
	}
}

// WithResolver replaces the resolver used to turn option declarations into option records
func WithResolver(resolver Resolver) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetResolver(resolver)
	}
}

// WithRenderer replaces the section renderer. A renderer reads the document it renders,
// so it is built by newRenderer for the Help being configured; NewRenderer itself fits.
func WithRenderer(newRenderer func(help *Help) Renderer) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.SetRenderer(newRenderer(help))
	}
}

// WithBundle replaces the message bundle used for headings and fallback texts. The
// language is reset to the bundle's default language. Messages missing from the bundle are
// taken from i18n.Default(); a nil bundle restores i18n.Default().
func WithBundle(bundle *i18n.Bundle) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		if bundle == nil {
			bundle = i18n.Default()
		}
		help.bundle = bundle
		help.lang = bundle.GetDefaultLanguage()
	}
}

// WithLanguage selects the language of headings and fallback texts. The language must be
// present in the bundle.
func WithLanguage(lang language.Tag) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		if !help.bundle.HasLanguage(lang) {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang.String(), languageList(help.bundle))
			return
		}
		help.lang = lang
	}
}

// WithLanguageName is WithLanguage for a BCP 47 tag such as "de" or "fr-CH"
func WithLanguageName(name string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		lang, e := language.Parse(name)
		if e != nil {
			*err = errs.ErrLanguageUnavailable.WithArgs(name, languageList(help.bundle)).Wrap(e)
			return
		}
		WithLanguage(lang)(help, err)
	}
}

// WithLineTerminator overrides the line terminator (DefaultLineTerminator)
func WithLineTerminator(eol string) ConfigureHelpFunc {
	return func(help *Help, err *error) {
		help.eol = eol
	}
}

func languageList(bundle *i18n.Bundle) string {
	langs := bundle.Languages()
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = lang.String()
	}

	return strings.Join(names, ", ")
}
