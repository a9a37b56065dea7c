package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/saturnines/gqlclient/pkg/auth"
)

// Builder constructs GraphQL requests.
type Builder struct {
	Endpoint    string
	Query       string
	Headers     map[string]string
	AuthHandler auth.Handler
}

// NewBuilder sets up a GraphQL Builder.
// Endpoint is the full URL of your GraphQL endpoint.
func NewBuilder(endpoint, query string, opts ...BuilderOption) *Builder {
	b := &Builder{
		Endpoint: endpoint,
		Query:    query,
	}
	b.ApplyOptions(opts...)
	return b
}

type requestBody struct {
	Query string `json:"query"`
}

// Build creates the *http.Request with a {"query": ...} JSON body.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	buf, err := json.Marshal(requestBody{Query: b.Query})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if b.AuthHandler != nil {
		if err := b.AuthHandler.ApplyAuth(req); err != nil {
			return nil, err
		}
	}
	return req, nil
}
