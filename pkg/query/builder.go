// Package query turns an ordered field selection and an optional argument
// set into GraphQL query text.
//
//	tree := query.NewTree(
//		query.Object("user", query.NewTree(
//			query.Leaf("active", query.Boolean),
//			query.Leaf("fname", query.String),
//		)),
//	)
//	text, err := query.Build(tree, query.Args{{Name: "user_id", Value: "130897273"}})
//
// By default the output layout is kept byte-compatible with existing
// consumers: every nesting level re-indents its whole buffer, so closing
// braces of doubly nested blocks sit two spaces deeper than their opening
// line, and the first argumented field ends its level. Both behaviours can
// be switched off with build options.
package query

import (
	"strings"
)

const indent = "  "

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	allSiblings  bool
	conventional bool
}

// WithAllSiblings keeps emitting sibling fields after the field that
// received the argument list.
func WithAllSiblings() BuildOption {
	return func(o *buildOptions) {
		o.allSiblings = true
	}
}

// WithConventionalIndent indents closing braces at the same depth as the
// line that opened them.
func WithConventionalIndent() BuildOption {
	return func(o *buildOptions) {
		o.conventional = true
	}
}

// Build renders tree as query text. args, when non-empty, is attached to the
// first object field of the top level only. The tree and the arguments are
// validated before anything is rendered.
func Build(tree *Tree, args Args, opts ...BuildOption) (string, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := tree.Validate(); err != nil {
		return "", err
	}
	if err := args.validate(); err != nil {
		return "", err
	}
	if len(args) == 0 {
		args = nil
	}

	if o.conventional {
		var sb strings.Builder
		if err := writeConventional(&sb, tree, args, 0, o); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
	return renderLegacy(tree, args, o)
}

// MustBuild is like Build but panics on error.
func MustBuild(tree *Tree, args Args, opts ...BuildOption) string {
	text, err := Build(tree, args, opts...)
	if err != nil {
		panic(err)
	}
	return text
}

// renderLegacy renders one level and re-indents the whole accumulated
// buffer by one step, so depth N ends up with N steps of indentation.
func renderLegacy(t *Tree, args Args, o buildOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("{\n")

	argsUsed := false
	for _, f := range t.fields {
		if f.IsLeaf() {
			sb.WriteString(f.Name)
			sb.WriteByte('\n')
			continue
		}

		sub, err := renderLegacy(f.Sub, nil, o)
		if err != nil {
			return "", err
		}
		sb.WriteString(f.Name)
		if args != nil && !argsUsed {
			argsUsed = true
			sb.WriteByte('(')
			if err := args.writeTo(&sb); err != nil {
				return "", err
			}
			sb.WriteByte(')')
			sb.WriteByte(' ')
			sb.WriteString(sub)
			if !o.allSiblings {
				break
			}
		} else {
			sb.WriteByte(' ')
			sb.WriteString(sub)
		}
		sb.WriteByte('\n')
	}

	out := strings.ReplaceAll(sb.String(), "\n", "\n"+indent)
	if args == nil {
		return out + "}", nil
	}

	// The argumented level closes on a fresh line at column zero.
	out = strings.TrimRight(out, " ")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + "}", nil
}

func writeConventional(sb *strings.Builder, t *Tree, args Args, depth int, o buildOptions) error {
	sb.WriteString("{\n")
	pad := strings.Repeat(indent, depth+1)

	argsUsed := false
	for _, f := range t.fields {
		sb.WriteString(pad)
		sb.WriteString(f.Name)
		if f.IsLeaf() {
			sb.WriteByte('\n')
			continue
		}

		stop := false
		if args != nil && !argsUsed {
			argsUsed = true
			stop = !o.allSiblings
			sb.WriteByte('(')
			if err := args.writeTo(sb); err != nil {
				return err
			}
			sb.WriteByte(')')
		}
		sb.WriteByte(' ')
		if err := writeConventional(sb, f.Sub, nil, depth+1, o); err != nil {
			return err
		}
		sb.WriteByte('\n')
		if stop {
			break
		}
	}

	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteByte('}')
	return nil
}
