package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigLoader defines the interface for loading configs
type ConfigLoader interface {
	Load(path string) (*Client, error)
	Parse(data []byte) (*Client, error)
}

type ValidationError struct {
	Field   string
	Message string
}

type Validator interface {
	Validate(config *Client) []ValidationError
}

// Returns the string representation of validation error
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultValueSetter Handles the interface for setting default values
type DefaultValueSetter interface {
	SetDefaults(config *Client)
}

// VariableExpander defines the interface for expanding variables
type VariableExpander interface {
	Expand(data []byte) []byte
}

// EnvExpander implements VariableExpander using environment variables
type EnvExpander struct{}

// Expand expands environment variables with the given data
func (e *EnvExpander) Expand(data []byte) []byte {
	expanded := os.Expand(string(data), os.Getenv)
	return []byte(expanded)
}

// ClientLoader loads Client configurations
type ClientLoader struct {
	expander      VariableExpander
	validators    []Validator
	defaultSetter DefaultValueSetter
}

// NewClientLoader creates a new ClientLoader with the given components
func NewClientLoader(
	expander VariableExpander,
	defaultSetter DefaultValueSetter,
	validators ...Validator,
) *ClientLoader {
	return &ClientLoader{
		expander:      expander,
		validators:    validators,
		defaultSetter: defaultSetter,
	}
}

// NewDefaultClientLoader wires env expansion, defaults and every validator.
func NewDefaultClientLoader() *ClientLoader {
	return NewClientLoader(
		&EnvExpander{},
		&ClientDefaults{},
		&RequiredFieldValidator{},
		&TimeoutValidator{},
		&AuthValidator{},
	)
}

// Load a client config from YAML file
func (l *ClientLoader) Load(path string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return l.Parse(data)
}

// Parse parses a yaml config
func (l *ClientLoader) Parse(data []byte) (*Client, error) {
	if l.expander != nil {
		data = l.expander.Expand(data)
	}

	var client Client
	if err := yaml.Unmarshal(data, &client); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if l.defaultSetter != nil {
		l.defaultSetter.SetDefaults(&client)
	}

	var allErrors []ValidationError
	for _, validator := range l.validators {
		allErrors = append(allErrors, validator.Validate(&client)...)
	}

	if len(allErrors) > 0 {
		return nil, fmt.Errorf("validation errors: %v", allErrors)
	}

	return &client, nil
}

// ClientDefaults implements DefaultValueSetter for Client
type ClientDefaults struct{}

// SetDefaults sets default values for Client
func (d *ClientDefaults) SetDefaults(client *Client) {
	client.Host = strings.TrimSpace(client.Host)

	if client.Headers == nil {
		client.Headers = make(map[string]string)
	}

	// API keys go in a header unless told otherwise
	if client.Auth != nil && client.Auth.APIKey != nil &&
		client.Auth.APIKey.Header == "" && client.Auth.APIKey.QueryParam == "" {
		client.Auth.APIKey.Header = "X-API-Key"
	}
}

// RequiredFieldValidator validates required fields for the client
type RequiredFieldValidator struct{}

// Validate checks the host is present and is an absolute http(s) URL
func (v *RequiredFieldValidator) Validate(client *Client) []ValidationError {
	if client.Host == "" {
		return []ValidationError{{Field: "host", Message: "is required"}}
	}

	u, err := url.Parse(client.Host)
	if err != nil {
		return []ValidationError{{Field: "host", Message: err.Error()}}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []ValidationError{{Field: "host", Message: fmt.Sprintf("unsupported scheme %q", u.Scheme)}}
	}
	if u.Host == "" {
		return []ValidationError{{Field: "host", Message: "missing host name"}}
	}
	return nil
}

// TimeoutValidator rejects negative timeouts
type TimeoutValidator struct{}

// Validate checks the timeout
func (v *TimeoutValidator) Validate(client *Client) []ValidationError {
	if client.Timeout < 0 {
		return []ValidationError{{Field: "timeout", Message: "must not be negative"}}
	}
	return nil
}

// AuthValidator handles authentication validation
type AuthValidator struct{}

// Validate checks that authentication configuration is valid
func (v *AuthValidator) Validate(client *Client) []ValidationError {
	var errors []ValidationError

	// Skip validation if auth is not configured
	if client.Auth == nil {
		return errors
	}

	switch client.Auth.Type {
	case AuthTypeBasic:
		if client.Auth.Basic == nil {
			errors = append(errors, ValidationError{Field: "auth.basic", Message: "is required for basic auth"})
		} else if client.Auth.Basic.Username == "" {
			errors = append(errors, ValidationError{Field: "auth.basic.username", Message: "is required for basic auth"})
		}
	case AuthTypeAPIKey:
		if client.Auth.APIKey == nil {
			errors = append(errors, ValidationError{Field: "auth.api_key", Message: "is required for api_key auth"})
		} else if client.Auth.APIKey.Value == "" {
			errors = append(errors, ValidationError{Field: "auth.api_key.value", Message: "is required for api_key auth"})
		}
	case AuthTypeBearer:
		if client.Auth.Bearer == nil || client.Auth.Bearer.Token == "" {
			errors = append(errors, ValidationError{Field: "auth.bearer.token", Message: "is required for bearer auth"})
		}
	default:
		errors = append(errors, ValidationError{Field: "auth.type", Message: fmt.Sprintf("unknown auth type: %s", client.Auth.Type)})
	}

	return errors
}
