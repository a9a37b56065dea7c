package query

import (
	"fmt"
	"regexp"

	"github.com/saturnines/gqlclient/pkg/errors"
)

var nameRe = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

// Field is one entry of a Tree. It is either an object field with a nested
// selection (Sub != nil) or a scalar leaf described by Kind.
type Field struct {
	Name string
	Sub  *Tree
	Kind Kind
}

// IsLeaf reports whether the field has no nested selection.
func (f Field) IsLeaf() bool {
	return f.Sub == nil
}

// Leaf returns a scalar field.
func Leaf(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// Object returns a field with a nested selection.
func Object(name string, sub *Tree) Field {
	return Field{Name: name, Sub: sub}
}

// Tree is an ordered field selection. Fields are emitted in the order they
// were added.
type Tree struct {
	fields []Field
}

// NewTree creates a Tree holding fields in order.
func NewTree(fields ...Field) *Tree {
	t := &Tree{}
	for _, f := range fields {
		t.Add(f)
	}
	return t
}

// Add appends a field and returns the tree for chaining.
func (t *Tree) Add(f Field) *Tree {
	t.fields = append(t.fields, f)
	return t
}

// Fields returns the fields in insertion order.
func (t *Tree) Fields() []Field {
	return t.fields
}

// Len returns the number of fields at this level.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.fields)
}

// Lookup returns the field with the given name at this level.
func (t *Tree) Lookup(name string) (Field, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks the tree is well formed: valid unique names per level,
// known leaf kinds, no nil sub-trees and no cycles.
func (t *Tree) Validate() error {
	if t == nil {
		return malformed("tree is nil")
	}
	return t.validate("", make(map[*Tree]bool))
}

func (t *Tree) validate(path string, onPath map[*Tree]bool) error {
	if onPath[t] {
		return malformed("cycle at %q", path)
	}
	onPath[t] = true
	defer delete(onPath, t)

	seen := make(map[string]struct{}, len(t.fields))
	for _, f := range t.fields {
		fieldPath := joinPath(path, f.Name)
		if !nameRe.MatchString(f.Name) {
			return malformed("invalid field name %q at %q", f.Name, path)
		}
		if _, dup := seen[f.Name]; dup {
			return malformed("duplicate field %q", fieldPath)
		}
		seen[f.Name] = struct{}{}

		if f.IsLeaf() {
			if !f.Kind.valid() {
				return malformed("field %q has unknown kind %s", fieldPath, f.Kind)
			}
			continue
		}
		if err := f.Sub.validate(fieldPath, onPath); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func malformed(format string, args ...any) error {
	return errors.WrapError(fmt.Errorf(format, args...), errors.ErrMalformedTree, "validate tree")
}
