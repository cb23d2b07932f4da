// Package getopt resolves compact option declarations such as "f,foo:" into option records.
//
// A declaration is a comma separated list of at most two names followed by optional
// markers:
//
//	f          -f, takes no value
//	foo:       --foo, requires a value
//	f,foo::    -f with alias --foo, optional value
//	I*         -I, requires nothing, may be repeated
//	D:*        -D, requires a value, may be repeated
//
// One-letter names become short tokens ("-f"), longer names become long tokens ("--foo").
// Leading dashes in names are ignored, so "-f,--foo:" is equivalent to "f,foo:".
package getopt

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdhelp/errs"
	"github.com/napalu/cmdhelp/types"
)

// NameConversionFunc converts a long option name before it is prefixed with "--"
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts "dryRun" to "dry-run"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts "dryRun" to "dry_run"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCase converts "dryRun" to "dryrun"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)

const (
	multiMarker    = "*"
	optionalMarker = "::"
	requiredMarker = ":"
	nameSeparator  = ","
	maxNames       = 2
)

// Resolver parses option declarations. The zero value is ready to use and leaves names
// unchanged.
type Resolver struct {
	nameConverter NameConversionFunc
}

// ConfigureResolverFunc is used when creating a Resolver
type ConfigureResolverFunc func(r *Resolver)

// NewResolver creates a Resolver configured by configs
func NewResolver(configs ...ConfigureResolverFunc) *Resolver {
	r := &Resolver{}
	for _, config := range configs {
		config(r)
	}

	return r
}

// WithNameConverter sets the function applied to long option names
func WithNameConverter(converter NameConversionFunc) ConfigureResolverFunc {
	return func(r *Resolver) {
		r.nameConverter = converter
	}
}

// Parse resolves spec into an option record. It fails when spec declares no name
// (errs.ErrEmptyOptionSpec) or more than two names (errs.ErrTooManyOptionNames).
func (r *Resolver) Parse(spec, descr string) (types.Option, error) {
	opt := types.Option{Descr: descr}

	rest := strings.TrimSpace(spec)
	if strings.HasSuffix(rest, multiMarker) {
		opt.Multi = true
		rest = strings.TrimSuffix(rest, multiMarker)
	}

	switch {
	case strings.HasSuffix(rest, optionalMarker):
		opt.Param = types.ParamOptional
		rest = strings.TrimSuffix(rest, optionalMarker)
	case strings.HasSuffix(rest, requiredMarker):
		opt.Param = types.ParamRequired
		rest = strings.TrimSuffix(rest, requiredMarker)
	}

	names := make([]string, 0, maxNames)
	for _, name := range strings.Split(rest, nameSeparator) {
		name = strings.TrimLeft(strings.TrimSpace(name), "-")
		if name == "" {
			continue
		}
		names = append(names, r.token(name))
	}

	if len(names) == 0 {
		return opt, errs.ErrEmptyOptionSpec
	}

	opt.Name = names[0]
	if len(names) > 1 {
		opt.Alias = names[1]
	}
	if len(names) > maxNames {
		return opt, errs.ErrTooManyOptionNames.WithArgs(spec)
	}

	return opt, nil
}

// Resolve is the non-failing form of Parse: names beyond the second are ignored and a
// declaration without any name resolves to a record named after the trimmed spec.
func (r *Resolver) Resolve(spec, descr string) types.Option {
	opt, err := r.Parse(spec, descr)
	if err != nil && opt.Name == "" {
		opt.Name = strings.TrimSpace(spec)
	}

	return opt
}

func (r *Resolver) token(name string) string {
	if len(name) == 1 {
		return "-" + name
	}

	if r.nameConverter != nil {
		name = r.nameConverter(name)
	}

	return "--" + name
}
