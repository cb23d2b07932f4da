package errs

import (
	"sync"

	"github.com/napalu/cmdhelp/i18n"
)

var (
	ErrUnknownParamType            = i18n.NewError(ErrUnknownParamTypeKey)
	ErrInvalidOption               = i18n.NewError(ErrInvalidOptionKey)
	ErrEmptyOptionSpec             = i18n.NewError(ErrEmptyOptionSpecKey)
	ErrTooManyOptionNames          = i18n.NewError(ErrTooManyOptionNamesKey)
	ErrUnsupportedDefinitionFormat = i18n.NewError(ErrUnsupportedDefinitionFormatKey)
	ErrReadingDefinition           = i18n.NewError(ErrReadingDefinitionKey)
	ErrMissingCommandName          = i18n.NewError(ErrMissingCommandNameKey)
	ErrLanguageUnavailable         = i18n.NewError(ErrLanguageUnavailableKey)
	ErrInvalidUsage                = i18n.NewError(ErrInvalidUsageKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = &builtInErrors{
	All: []*i18n.TrError{
		ErrUnknownParamType,
		ErrInvalidOption,
		ErrEmptyOptionSpec,
		ErrTooManyOptionNames,
		ErrUnsupportedDefinitionFormat,
		ErrReadingDefinition,
		ErrMissingCommandName,
		ErrLanguageUnavailable,
		ErrInvalidUsage,
	},
}

// UpdateMessageProvider updates the message provider of all built-in errors.
//
// Example:
//
//	bundle := i18n.NewEmptyBundle()
//	bundle.SetDefaultLanguage(language.German)
//	...
//	errs.UpdateMessageProvider(bundle)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
