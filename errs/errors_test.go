package errs

import (
	"errors"
	"testing"

	"github.com/napalu/cmdhelp/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestUpdateMessageProvider(t *testing.T) {
	originalMsg := ErrMissingCommandName.Error()
	assert.Equal(t, "missing command name", originalMsg)

	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)

	UpdateMessageProvider(bundle)
	defer UpdateMessageProvider(i18n.Default())

	assert.Equal(t, "fehlender Befehlsname", ErrMissingCommandName.Error())

	withArgs := ErrTooManyOptionNames.WithArgs("a,b,c")
	assert.Equal(t, `Optionsdefinition "a,b,c" enthält mehr als zwei Namen`, withArgs.Error())
}

func TestSentinels(t *testing.T) {
	err := ErrInvalidOption.WithArgs("--foo").Wrap(ErrUnknownParamType.WithArgs(7))
	assert.True(t, errors.Is(err, ErrInvalidOption))
	assert.True(t, errors.Is(err, ErrUnknownParamType))
	assert.False(t, errors.Is(err, ErrEmptyOptionSpec))
	assert.Equal(t, "invalid option --foo: unknown parameter type: 7", err.Error())
}
