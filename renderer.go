package cmdhelp

import (
	"strings"

	"github.com/napalu/cmdhelp/internal/messages"
	"github.com/napalu/cmdhelp/markup"
	"github.com/napalu/cmdhelp/types"
)

type DefaultRenderer struct {
	help *Help
}

func NewRenderer(help *Help) *DefaultRenderer {
	return &DefaultRenderer{help: help}
}

func (r *DefaultRenderer) heading(key string) string {
	return markup.Bold + r.help.message(key) + markup.Reset + r.help.eol
}

// Summary renders the SUMMARY section: the emphasised command name followed by the summary
func (r *DefaultRenderer) Summary(name string) string {
	if r.help.summary == "" {
		return ""
	}

	eol := r.help.eol
	return r.heading(messages.HelpSummaryKey) +
		indent + markup.Bold + name + markup.Reset + " -- " + r.help.summary + eol + eol
}

// Usage renders the USAGE section with one line per usage pattern, each prefixed with the
// underlined command name
func (r *DefaultRenderer) Usage(name string) string {
	if len(r.help.usage) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.heading(messages.HelpUsageKey))
	for _, usage := range r.help.usage {
		sb.WriteString(indent + markup.Underline + name + markup.Reset + " " + usage + r.help.eol)
	}
	sb.WriteString(r.help.eol)

	return sb.String()
}

// Description renders the DESCRIPTION section
func (r *DefaultRenderer) Description() string {
	if r.help.descr == "" {
		return ""
	}

	eol := r.help.eol
	return r.heading(messages.HelpDescriptionKey) +
		indent + strings.TrimSpace(r.help.descr) + eol + eol
}

// Options renders the OPTIONS section. Each option block is followed by a blank line,
// including the last one; Help.Render trims it together with any other trailing whitespace.
func (r *DefaultRenderer) Options() string {
	if r.help.options.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.heading(messages.HelpOptionsKey))
	for _, opt := range r.help.Resolve() {
		sb.WriteString(r.Option(opt))
		sb.WriteString(r.help.eol)
	}

	return sb.String()
}

// Option renders one option block: a line for the name, a line for the alias if there is
// one, and an indented description line.
func (r *DefaultRenderer) Option(opt types.Option) string {
	eol := r.help.eol

	var sb strings.Builder
	sb.WriteString(indent + r.OptionParam(opt.Name, opt.Param, opt.Multi) + eol)
	if opt.Alias != "" {
		sb.WriteString(indent + r.OptionParam(opt.Alias, opt.Param, opt.Multi) + eol)
	}

	descr := strings.TrimSpace(opt.Descr)
	if descr == "" {
		descr = r.help.message(messages.MsgNoDescriptionKey)
	}
	sb.WriteString(descrIndent + descr + eol)

	return sb.String()
}

// OptionParam renders a single option token with its value placeholder. Two-character
// tokens ("-f") use the short form ("-f <value>", "-f [<value>]"), all other tokens the
// long form ("--foo=<value>", "--foo[=<value>]"). A repeatable option is followed by the
// whole expression in brackets: "-f <value> [-f <value> [...]]".
func (r *DefaultRenderer) OptionParam(token string, param types.ParamType, multi bool) string {
	text := token
	if types.IsShort(token) {
		text += shortParam(param)
	} else {
		text += longParam(param)
	}

	if multi {
		text += " [" + text + " [...]]"
	}

	return text
}

// unknown parameter types render like ParamNone
func shortParam(param types.ParamType) string {
	switch param {
	case types.ParamRequired:
		return " <value>"
	case types.ParamOptional:
		return " [<value>]"
	}
	return ""
}

func longParam(param types.ParamType) string {
	switch param {
	case types.ParamRequired:
		return "=<value>"
	case types.ParamOptional:
		return "[=<value>]"
	}
	return ""
}
