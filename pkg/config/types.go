package config

import (
	"time"

	"github.com/saturnines/gqlclient/pkg/query"
)

// Client represents the full config for one GraphQL endpoint
type Client struct {
	Host        string            `yaml:"host"`                   // Required: endpoint URL
	ForceTyping bool              `yaml:"force_typing,omitempty"` // Check response leaves against their kinds
	Timeout     time.Duration     `yaml:"timeout,omitempty"`      // Request timeout, 0 means none
	Headers     map[string]string `yaml:"headers,omitempty"`      // Extra HTTP headers
	Auth        *Auth             `yaml:"auth,omitempty"`         // Optional authentication
}

// Auth defines auth methods.
type Auth struct {
	Type   AuthType    `yaml:"type"`              // Required authentication type
	Basic  *BasicAuth  `yaml:"basic,omitempty"`   // Basic authentication
	APIKey *APIKeyAuth `yaml:"api_key,omitempty"` // API key authentication
	Bearer *BearerAuth `yaml:"bearer,omitempty"`  // Bearer token authentication
}

// AuthType defines current supported authentication types
type AuthType string

const (
	AuthTypeBasic  AuthType = "basic"
	AuthTypeAPIKey AuthType = "api_key"
	AuthTypeBearer AuthType = "bearer"
)

// BasicAuth contains auth credentials for the api
type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// APIKeyAuth contains API details
type APIKeyAuth struct {
	Header     string `yaml:"header,omitempty"`      // Header name
	QueryParam string `yaml:"query_param,omitempty"` // Query parameter name
	Value      string `yaml:"value"`                 // API key value
}

// BearerAuth contains a static bearer token
type BearerAuth struct {
	Token string `yaml:"token"`
}

// Document is a query described in YAML: an ordered field tree and an
// optional ordered argument set.
type Document struct {
	Fields *query.Tree
	Args   query.Args
}
