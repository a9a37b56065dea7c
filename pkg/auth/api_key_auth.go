package auth

import (
	"fmt"
	"net/http"
)

// APIKeyAuth sends a static key as a header, a query parameter or both.
type APIKeyAuth struct {
	HeaderName string // e.g. "X-API-Key"
	QueryParam string // e.g. "api_key"
	Value      string
}

// NewAPIKeyAuth creates a new API key authentication handler
func NewAPIKeyAuth(headerName, queryParam, value string) *APIKeyAuth {
	return &APIKeyAuth{
		HeaderName: headerName,
		QueryParam: queryParam,
		Value:      value,
	}
}

// ApplyAuth adds the API key to the request
func (a *APIKeyAuth) ApplyAuth(req *http.Request) error {
	if a.Value == "" {
		return missing("api key", "apply api key auth")
	}
	if a.HeaderName == "" && a.QueryParam == "" {
		return missing("api key header and query parameter", "apply api key auth")
	}

	if a.HeaderName != "" {
		req.Header.Set(a.HeaderName, a.Value)
	}
	if a.QueryParam != "" {
		q := req.URL.Query()
		q.Set(a.QueryParam, a.Value)
		req.URL.RawQuery = q.Encode()
	}
	return nil
}

// String never includes the key itself
func (a *APIKeyAuth) String() string {
	if a.HeaderName != "" {
		return fmt.Sprintf("APIKeyAuth(header: %s)", a.HeaderName)
	}
	return fmt.Sprintf("APIKeyAuth(query: %s)", a.QueryParam)
}
