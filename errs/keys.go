// Package errs declares the translatable errors returned by cmdhelp packages.
// This file contains the translation keys for those errors.
package errs

const (
	prefixKey = "cmdhelp"
)

const (
	ErrorPrefixKey = prefixKey + ".error"
)

const (
	ErrUnknownParamTypeKey            = ErrorPrefixKey + ".unknown_param_type"
	ErrInvalidOptionKey               = ErrorPrefixKey + ".invalid_option"
	ErrEmptyOptionSpecKey             = ErrorPrefixKey + ".empty_option_spec"
	ErrTooManyOptionNamesKey          = ErrorPrefixKey + ".too_many_option_names"
	ErrUnsupportedDefinitionFormatKey = ErrorPrefixKey + ".unsupported_definition_format"
	ErrReadingDefinitionKey           = ErrorPrefixKey + ".reading_definition"
	ErrMissingCommandNameKey          = ErrorPrefixKey + ".missing_command_name"
	ErrLanguageUnavailableKey         = ErrorPrefixKey + ".language_unavailable"
	ErrInvalidUsageKey                = ErrorPrefixKey + ".invalid_usage"
)
