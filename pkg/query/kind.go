package query

import (
	"fmt"
	"strings"

	"github.com/saturnines/gqlclient/pkg/errors"
)

// Kind is the declared scalar type of a leaf field. It documents what the
// server is expected to return and is only checked when force typing is on.
type Kind int

const (
	kindUnknown Kind = iota
	Boolean
	String
	Int
	Float
	ID
)

var kindNames = map[Kind]string{
	Boolean: "Boolean",
	String:  "String",
	Int:     "Int",
	Float:   "Float",
	ID:      "ID",
}

// String returns the GraphQL name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a leaf marker such as "bool", "str" or "Int" to a Kind.
func ParseKind(marker string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(marker)) {
	case "bool", "boolean":
		return Boolean, nil
	case "str", "string":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "float":
		return Float, nil
	case "id":
		return ID, nil
	}
	return kindUnknown, errors.WrapError(
		fmt.Errorf("unknown leaf marker %q", marker),
		errors.ErrMalformedTree,
		"parse kind",
	)
}
