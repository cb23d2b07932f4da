// Command cmdhelp renders a help document from command-line flags or from a
// TOML/YAML definition file.
//
// Each positional argument declares one option as "spec description words", for example:
//
//	cmdhelp --name mycmd --summary "does things" 'f,foo: "Foo flag"' 'v* verbose'
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/napalu/cmdhelp"
	"github.com/napalu/cmdhelp/errs"
	"github.com/napalu/cmdhelp/getopt"
	"github.com/napalu/cmdhelp/helpfile"
	"github.com/napalu/cmdhelp/i18n"
	"github.com/napalu/cmdhelp/markup"
	"github.com/napalu/goopt"
	gooptypes "github.com/napalu/goopt/types"
	phuslog "github.com/phuslu/log"
	"golang.org/x/text/language"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func newParser() (*goopt.Parser, error) {
	p := goopt.NewParser()
	flags := []struct {
		name  string
		short string
		descr string
		typ   gooptypes.OptionType
	}{
		{"file", "f", "help definition file (.toml, .yaml or .yml)", gooptypes.Single},
		{"name", "n", "command name shown in SUMMARY and USAGE", gooptypes.Single},
		{"summary", "s", "one-line summary", gooptypes.Single},
		{"usage", "u", "usage line; several lines are given shell-quoted: '\"<a>\" \"<b> <c>\"'", gooptypes.Single},
		{"descr", "d", "long description", gooptypes.Single},
		{"lang", "l", "language of headings and messages", gooptypes.Single},
		{"kebab", "k", "convert long option names to kebab-case", gooptypes.Standalone},
		{"plain", "p", "never emit terminal styles", gooptypes.Standalone},
		{"validate", "c", "check every option declaration before rendering", gooptypes.Standalone},
		{"verbose", "v", "log debug messages", gooptypes.Standalone},
	}

	for _, f := range flags {
		err := p.AddFlag(f.name, goopt.NewArg(
			goopt.WithShortFlag(f.short),
			goopt.WithDescription(f.descr),
			goopt.WithType(f.typ)))
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

func flagSet(p *goopt.Parser, flag string) bool {
	set, err := p.GetBool(flag)
	return err == nil && set
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	return slog.New(phuslog.SlogNewJSONHandler(w, opts))
}

// run executes the command line argv, whose first element is the program name
func run(argv []string, stdout, stderr io.Writer) error {
	var args []string
	if len(argv) > 0 {
		args = argv[1:]
	}

	p, err := newParser()
	if err != nil {
		newLogger(stderr, false).Error("failed to set up flags", "error", err)
		return err
	}

	if !p.Parse(args) {
		err = errors.Join(p.GetErrors()...)
		newLogger(stderr, false).Error("invalid command line", "error", err)
		p.PrintUsage(stderr)
		return err
	}

	logger := newLogger(stderr, flagSet(p, "verbose"))
	lang := logLanguage(p)

	h, name, err := buildHelp(p, logger)
	if err != nil {
		logger.Error("failed to build help", "error", localize(err, lang))
		return err
	}

	if flagSet(p, "validate") {
		if err = h.Validate(); err != nil {
			logger.Error("invalid option declarations", "error", localize(err, lang))
			return err
		}
	}

	formatter := markup.ForWriter(stdout)
	if flagSet(p, "plain") {
		formatter = markup.NewFormatter(false)
	}
	logger.Debug("rendering help", "name", name, "styled", formatter.Styled(), "options", len(h.Options()))

	if err = formatter.Fprint(stdout, h.Render(name)); err != nil {
		logger.Error("failed to write help", "error", err)
		return err
	}

	return nil
}

// logLanguage is the --lang language when the embedded messages cover it, English otherwise
func logLanguage(p *goopt.Parser) language.Tag {
	bundle := i18n.Default()
	if v, ok := p.Get("lang"); ok {
		if lang, err := language.Parse(v); err == nil && bundle.HasLanguage(lang) {
			return lang
		}
	}

	return bundle.GetDefaultLanguage()
}

// localize translates err into lang. Joined errors are translated one by one.
func localize(err error, lang language.Tag) string {
	switch e := err.(type) {
	case *i18n.TrError:
		return e.Translate(i18n.Default(), lang)
	case interface{ Unwrap() []error }:
		parts := make([]string, 0, len(e.Unwrap()))
		for _, inner := range e.Unwrap() {
			parts = append(parts, localize(inner, lang))
		}
		return strings.Join(parts, "; ")
	}

	return err.Error()
}

// usageLines keeps an unquoted value as a single usage line and splits a quoted one
func usageLines(value string) ([]string, error) {
	if !strings.ContainsAny(value, `"'`) {
		return []string{value}, nil
	}

	return shlex.Split(value)
}

func buildHelp(p *goopt.Parser, logger *slog.Logger) (*cmdhelp.Help, string, error) {
	var (
		configs []cmdhelp.ConfigureHelpFunc
		name    string
	)

	if path, ok := p.Get("file"); ok {
		def, err := helpfile.Load(path)
		if err != nil {
			return nil, "", err
		}
		logger.Debug("loaded help definition", "path", path, "options", len(def.Options))

		configs = def.Configs()
		name = def.Name
	}

	if v, ok := p.Get("name"); ok {
		name = v
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", errs.ErrMissingCommandName
	}

	if v, ok := p.Get("summary"); ok {
		configs = append(configs, cmdhelp.WithSummary(v))
	}
	if v, ok := p.Get("usage"); ok {
		lines, err := usageLines(v)
		if err != nil {
			return nil, "", fmt.Errorf("usage %q: %w", v, err)
		}
		configs = append(configs, cmdhelp.WithUsage(lines...))
	}
	if v, ok := p.Get("descr"); ok {
		configs = append(configs, cmdhelp.WithDescr(v))
	}
	if v, ok := p.Get("lang"); ok {
		configs = append(configs, cmdhelp.WithLanguageName(v))
	}
	if flagSet(p, "kebab") {
		configs = append(configs, cmdhelp.WithResolver(getopt.NewResolver(getopt.WithNameConverter(getopt.ToKebabCase))))
	}

	for _, arg := range p.GetPositionalArgs() {
		fields, err := shlex.Split(arg.Value)
		if err != nil {
			return nil, "", errs.ErrInvalidOption.WithArgs(arg.Value).Wrap(err)
		}
		if len(fields) == 0 {
			return nil, "", errs.ErrInvalidOption.WithArgs(arg.Value).Wrap(errs.ErrEmptyOptionSpec)
		}
		configs = append(configs, cmdhelp.WithOption(fields[0], strings.Join(fields[1:], " ")))
	}

	h, err := cmdhelp.NewWith(configs...)
	if err != nil {
		return nil, "", err
	}

	return h, name, nil
}
