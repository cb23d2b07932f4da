package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// MessageProvider supplies the unformatted message of a key
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError is an error whose message is looked up by key. Copies made with WithArgs and
// Wrap still match the error returned by NewError under errors.Is.
//
//	var ErrInvalidOption = i18n.NewError("cmdhelp.error.invalid_option")
//
//	return ErrInvalidOption.WithArgs("--foo").Wrap(cause)
type TrError struct {
	root     *TrError
	key      string
	args     []interface{}
	cause    error
	provider MessageProvider
}

// NewError creates a sentinel error for key
func NewError(key string) *TrError {
	e := &TrError{key: key, provider: DefaultMessageProvider()}
	e.root = e

	return e
}

func (e *TrError) clone() *TrError {
	c := *e
	return &c
}

// WithArgs returns a copy of e formatted with args
func (e *TrError) WithArgs(args ...interface{}) *TrError {
	c := e.clone()
	c.args = args
	return c
}

// Wrap returns a copy of e with cause attached
func (e *TrError) Wrap(cause error) *TrError {
	c := e.clone()
	c.cause = cause
	return c
}

// SetProvider replaces the provider Error looks messages up in
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}

// Error formats the message of the error's provider
func (e *TrError) Error() string {
	return e.render(func(key string, args []interface{}) string {
		msg := e.provider.GetMessage(key)
		if len(args) == 0 {
			return msg
		}
		return fmt.Sprintf(msg, args...)
	})
}

// Translate formats the message in lang using bundle. Wrapped TrErrors are translated as
// well.
func (e *TrError) Translate(bundle *Bundle, lang language.Tag) string {
	return e.render(func(key string, args []interface{}) string {
		if len(args) == 0 {
			return bundle.Message(lang, key)
		}
		return bundle.TL(lang, key, args...)
	})
}

func (e *TrError) render(format func(key string, args []interface{}) string) string {
	msg := format(e.key, e.args)

	switch cause := e.cause.(type) {
	case nil:
		return msg
	case *TrError:
		return msg + ": " + cause.render(format)
	default:
		return msg + ": " + cause.Error()
	}
}

// Is reports whether target is e or was derived from the same sentinel
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	return ok && t.root == e.root
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.cause
}

var (
	providerMu sync.RWMutex
	provider   MessageProvider
)

// SetDefaultMessageProvider sets the provider of errors created afterwards. A nil provider
// restores Default().
func SetDefaultMessageProvider(p MessageProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// DefaultMessageProvider returns the provider given to new errors
func DefaultMessageProvider() MessageProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()

	if provider == nil {
		return Default()
	}
	return provider
}
