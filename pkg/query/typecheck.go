package query

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/saturnines/gqlclient/pkg/errors"
)

// CheckTypes walks decoded response data alongside tree and reports the
// first leaf whose JSON value does not match its declared Kind. Nulls are
// accepted everywhere, lists are checked element by element and response
// keys missing from the data are skipped.
func CheckTypes(tree *Tree, data any) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	return checkObject(tree, data, "")
}

func checkObject(t *Tree, data any, path string) error {
	switch v := data.(type) {
	case nil:
		return nil
	case []any:
		for i, item := range v {
			if err := checkObject(t, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for _, f := range t.fields {
			val, ok := v[f.Name]
			if !ok {
				continue
			}
			fieldPath := joinPath(path, f.Name)
			var err error
			if f.IsLeaf() {
				err = checkLeaf(f.Kind, val, fieldPath)
			} else {
				err = checkObject(f.Sub, val, fieldPath)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(path, "object", data)
}

func checkLeaf(kind Kind, val any, path string) error {
	if list, ok := val.([]any); ok {
		for i, item := range list {
			if err := checkLeaf(kind, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	if val == nil {
		return nil
	}

	ok := false
	switch kind {
	case Boolean:
		_, ok = val.(bool)
	case String:
		_, ok = val.(string)
	case ID:
		switch val.(type) {
		case string, float64, json.Number:
			ok = true
		}
	case Int:
		ok = isInteger(val)
	case Float:
		switch val.(type) {
		case float64, json.Number:
			ok = true
		}
	}
	if !ok {
		return mismatch(path, kind.String(), val)
	}
	return nil
}

func isInteger(val any) bool {
	switch n := val.(type) {
	case float64:
		return n == math.Trunc(n) && !math.IsInf(n, 0)
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}

func mismatch(path, want string, got any) error {
	return errors.WrapError(
		fmt.Errorf("field %q: expected %s, got %T", path, want, got),
		errors.ErrTypeMismatch,
		"check response types",
	)
}
