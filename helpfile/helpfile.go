// Package helpfile loads help documents from TOML or YAML definition files.
//
// A TOML definition looks like this:
//
//	name = "mycmd"
//	summary = "does things"
//	usage = ["[options] <file>", "--version"]
//	description = """
//	Long text.
//	"""
//
//	[[options]]
//	spec = "f,foo:"
//	description = "Foo flag"
//
// usage may also be a single string.
package helpfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/napalu/cmdhelp"
	"github.com/napalu/cmdhelp/errs"
	"github.com/napalu/cmdhelp/types"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a definition file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Definition is the decoded content of a help definition file
type Definition struct {
	Name     string      `toml:"name" yaml:"name"`
	Language string      `toml:"language" yaml:"language"`
	Summary  string      `toml:"summary" yaml:"summary"`
	Usage    Lines       `toml:"usage" yaml:"usage"`
	Descr    string      `toml:"description" yaml:"description"`
	Options  []OptionDef `toml:"options" yaml:"options"`
}

// OptionDef declares a single option
type OptionDef struct {
	Spec  string `toml:"spec" yaml:"spec"`
	Descr string `toml:"description" yaml:"description"`
}

// Lines holds either a single string or a list of strings
type Lines []string

// UnmarshalTOML implements toml.Unmarshaler
func (l *Lines) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*l = Lines{v}
	case []any:
		lines := make(Lines, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return errs.ErrInvalidUsage.WithArgs(fmt.Sprintf("%T", item))
			}
			lines = append(lines, s)
		}
		*l = lines
	default:
		return errs.ErrInvalidUsage.WithArgs(fmt.Sprintf("%T", data))
	}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (l *Lines) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*l = nil
			return nil
		}
		*l = Lines{value.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return errs.ErrInvalidUsage.WithArgs(value.Tag).Wrap(err)
		}
		*l = lines
		return nil
	}

	return errs.ErrInvalidUsage.WithArgs(value.Tag)
}

// DetectFormat derives the format from the file extension (.toml, .yaml or .yml)
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", errs.ErrUnsupportedDefinitionFormat.WithArgs(path)
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (*Definition, error) {
	def := &Definition{}

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(def); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, def); err != nil {
			return nil, err
		}
	default:
		return nil, errs.ErrUnsupportedDefinitionFormat.WithArgs(string(format))
	}

	return def, nil
}

// Load reads and decodes the definition file at path
func Load(path string) (*Definition, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.ErrReadingDefinition.WithArgs(path).Wrap(err)
	}

	def, err := Decode(data, format)
	if err != nil {
		return nil, errs.ErrReadingDefinition.WithArgs(path).Wrap(err)
	}

	return def, nil
}

// Configs converts the definition into configuration functions for cmdhelp.NewWith
func (d *Definition) Configs() []cmdhelp.ConfigureHelpFunc {
	specs := make([]types.OptionSpec, 0, len(d.Options))
	for _, o := range d.Options {
		specs = append(specs, types.OptionSpec{Spec: o.Spec, Descr: o.Descr})
	}

	configs := []cmdhelp.ConfigureHelpFunc{
		cmdhelp.WithSummary(d.Summary),
		cmdhelp.WithUsage(d.Usage...),
		cmdhelp.WithDescr(d.Descr),
		cmdhelp.WithOptions(specs...),
	}

	if d.Language != "" {
		configs = append(configs, cmdhelp.WithLanguageName(d.Language))
	}

	return configs
}

// Help builds a help document from the definition. extra is applied after the
// definition, so it may override any part of it.
func (d *Definition) Help(extra ...cmdhelp.ConfigureHelpFunc) (*cmdhelp.Help, error) {
	return cmdhelp.NewWith(append(d.Configs(), extra...)...)
}
