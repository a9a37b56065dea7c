package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saturnines/gqlclient/pkg/errors"
	"github.com/saturnines/gqlclient/pkg/query"
)

// DocumentLoader reads query documents. Key order in the YAML is kept, so
// fields come out of the builder in the order they were written.
//
//	fields:
//	  user:
//	    active: bool
//	    fname: str
//	args:
//	  user_id: "130897273"
type DocumentLoader struct {
	expander VariableExpander
}

// NewDocumentLoader creates a DocumentLoader. expander may be nil.
func NewDocumentLoader(expander VariableExpander) *DocumentLoader {
	return &DocumentLoader{expander: expander}
}

// Load a query document from YAML file
func (l *DocumentLoader) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return l.Parse(data)
}

// Parse parses a yaml query document
func (l *DocumentLoader) Parse(data []byte) (*Document, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, docError(&root, "document is empty")
	}

	top := resolve(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return nil, docError(top, "document must be a mapping")
	}

	doc := &Document{}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], resolve(top.Content[i+1])
		switch key.Value {
		case "fields":
			tree, err := parseTree(value)
			if err != nil {
				return nil, err
			}
			doc.Fields = tree
		case "args":
			args, err := parseArgs(value)
			if err != nil {
				return nil, err
			}
			doc.Args = args
		default:
			return nil, docError(key, fmt.Sprintf("unknown key %q", key.Value))
		}
	}

	if doc.Fields == nil {
		return nil, docError(top, "fields is required")
	}
	if err := doc.Fields.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func parseTree(n *yaml.Node) (*query.Tree, error) {
	if n.Kind != yaml.MappingNode {
		return nil, docError(n, "fields must be a mapping")
	}

	tree := query.NewTree()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], resolve(n.Content[i+1])
		switch value.Kind {
		case yaml.MappingNode:
			sub, err := parseTree(value)
			if err != nil {
				return nil, err
			}
			tree.Add(query.Object(key.Value, sub))
		case yaml.ScalarNode:
			kind, err := query.ParseKind(value.Value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", value.Line, err)
			}
			tree.Add(query.Leaf(key.Value, kind))
		default:
			return nil, docError(value, fmt.Sprintf("field %q must be a mapping or a kind marker", key.Value))
		}
	}
	return tree, nil
}

// parseArgs keeps YAML scalars as their natural Go values; anything other
// than strings, booleans and nulls is rejected later by the builder.
func parseArgs(n *yaml.Node) (query.Args, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, docError(n, "args must be a mapping")
	}

	args := make(query.Args, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], resolve(n.Content[i+1])
		if value.Kind != yaml.ScalarNode {
			return nil, docError(value, fmt.Sprintf("argument %q must be a scalar", key.Value))
		}
		var v any
		if err := value.Decode(&v); err != nil {
			return nil, docError(value, err.Error())
		}
		args = append(args, query.Arg{Name: key.Value, Value: v})
	}
	return args, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func docError(n *yaml.Node, msg string) error {
	return errors.WrapError(
		fmt.Errorf("line %d: %s", n.Line, msg),
		errors.ErrConfiguration,
		"parse query document",
	)
}
