package types

import (
	"strings"

	"github.com/napalu/cmdhelp/errs"
)

// ParamType describes whether a value follows an option token
type ParamType int

const (
	ParamNone     ParamType = iota // ParamNone denotes a flag which does not accept a value
	ParamOptional ParamType = 1    // ParamOptional denotes a flag which may be followed by a value
	ParamRequired ParamType = 2    // ParamRequired denotes a flag which must be followed by a value
)

// String returns the string representation of a ParamType
func (p ParamType) String() string {
	switch p {
	case ParamNone:
		return "none"
	case ParamOptional:
		return "optional"
	case ParamRequired:
		return "required"
	}
	return "unknown"
}

// IsValid reports whether p is one of ParamNone, ParamOptional or ParamRequired
func (p ParamType) IsValid() bool {
	return p >= ParamNone && p <= ParamRequired
}

// ParseParamType converts "none", "optional" or "required" (case-insensitive) to a ParamType.
// An empty string yields ParamNone.
func ParseParamType(s string) (ParamType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ParamNone, nil
	case "optional":
		return ParamOptional, nil
	case "required":
		return ParamRequired, nil
	}

	return ParamNone, errs.ErrUnknownParamType.WithArgs(s)
}

// Option is the resolved form of a single option declaration
type Option struct {
	Name  string    // canonical token, e.g. "-f" or "--foo"
	Alias string    // secondary token, may be empty
	Param ParamType // value policy
	Multi bool      // option may be given more than once
	Descr string
}

// IsShort reports whether token uses the two-character short form (e.g. "-f")
func IsShort(token string) bool {
	return len(token) == 2
}

// OptionSpec pairs an unresolved option declaration with its description
type OptionSpec struct {
	Spec  string
	Descr string
}
