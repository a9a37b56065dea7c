package query

import (
	"fmt"
	"strings"

	"github.com/saturnines/gqlclient/pkg/errors"
)

// Arg is a single filter argument.
type Arg struct {
	Name  string
	Value any
}

// Args is an ordered argument set. Only string, bool and nil values can be
// rendered.
type Args []Arg

// With returns a copy of a with one more argument appended.
func (a Args) With(name string, value any) Args {
	out := make(Args, len(a), len(a)+1)
	copy(out, a)
	return append(out, Arg{Name: name, Value: value})
}

// Get returns the value of the named argument.
func (a Args) Get(name string) (any, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

func (a Args) validate() error {
	for _, arg := range a {
		if !nameRe.MatchString(arg.Name) {
			return errors.WrapError(
				fmt.Errorf("invalid argument name %q", arg.Name),
				errors.ErrMalformedTree,
				"validate arguments",
			)
		}
		if _, err := renderValue(arg.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeTo renders "name: value, name: value" into sb.
func (a Args) writeTo(sb *strings.Builder) error {
	for i, arg := range a {
		v, err := renderValue(arg.Value)
		if err != nil {
			return err
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Name)
		sb.WriteString(": ")
		sb.WriteString(v)
	}
	return nil
}

// renderValue converts an argument value to its literal form. Strings are
// quoted as-is: embedded double quotes are not escaped.
func renderValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return `"` + val + `"`, nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	}
	return "", errors.WrapError(
		fmt.Errorf("value %v of type %T", v, v),
		errors.ErrUnsupportedValueKind,
		"render argument",
	)
}
