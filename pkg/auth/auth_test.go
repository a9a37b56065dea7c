package auth

import (
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/saturnines/gqlclient/pkg/config"
	"github.com/saturnines/gqlclient/pkg/errors"
)

func newGraphQLRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.example.com/graphql", strings.NewReader(`{"query":"{ id }"}`))
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func assertHeader(t *testing.T, req *http.Request, header, expected string) {
	t.Helper()
	if value := req.Header.Get(header); value != expected {
		t.Errorf("Expected %s header '%s', got '%s'", header, expected, value)
	}
}

func assertQueryParam(t *testing.T, req *http.Request, param, expected string) {
	t.Helper()
	if value := req.URL.Query().Get(param); value != expected {
		t.Errorf("Expected %s query param '%s', got '%s'", param, expected, value)
	}
}

func assertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error containing '%s', got nil", expected)
		return
	}
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Expected error containing '%s', got '%s'", expected, err.Error())
	}
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("HeaderBased", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewAPIKeyAuth("X-API-Key", "", "test-api-key").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}
		assertHeader(t, req, "X-API-Key", "test-api-key")
	})

	t.Run("QueryBased", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewAPIKeyAuth("", "api_key", "test-api-key").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}
		assertQueryParam(t, req, "api_key", "test-api-key")
	})

	t.Run("BothHeaderAndQuery", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewAPIKeyAuth("X-API-Key", "api_key", "test-api-key").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}
		assertHeader(t, req, "X-API-Key", "test-api-key")
		assertQueryParam(t, req, "api_key", "test-api-key")
	})

	t.Run("MissingValue", func(t *testing.T) {
		err := NewAPIKeyAuth("X-API-Key", "", "").ApplyAuth(newGraphQLRequest(t))
		assertErrorContains(t, err, "api key is empty")
		if !errors.Is(err, errors.ErrAuthentication) {
			t.Errorf("Expected ErrAuthentication, got %v", err)
		}
	})

	t.Run("NoPlacement", func(t *testing.T) {
		err := NewAPIKeyAuth("", "", "test-api-key").ApplyAuth(newGraphQLRequest(t))
		assertErrorContains(t, err, "header and query parameter is empty")
	})

	t.Run("StringMethod", func(t *testing.T) {
		str := NewAPIKeyAuth("X-API-Key", "", "test-api-key").String()
		if !strings.Contains(str, "X-API-Key") {
			t.Errorf("String() should contain header name, got: %s", str)
		}
		if strings.Contains(str, "test-api-key") {
			t.Errorf("String() should not contain the key, got: %s", str)
		}
	})
}

func TestBasicAuth(t *testing.T) {
	t.Run("ValidCredentials", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewBasicAuth("testuser", "testpass").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}
		encoded := base64.StdEncoding.EncodeToString([]byte("testuser:testpass"))
		assertHeader(t, req, "Authorization", "Basic "+encoded)
	})

	t.Run("EmptyUsername", func(t *testing.T) {
		err := NewBasicAuth("", "testpass").ApplyAuth(newGraphQLRequest(t))
		assertErrorContains(t, err, "username is empty")
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewBasicAuth("testuser", "").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth with empty password failed: %v", err)
		}
		encoded := base64.StdEncoding.EncodeToString([]byte("testuser:"))
		assertHeader(t, req, "Authorization", "Basic "+encoded)
	})

	t.Run("StringMethod", func(t *testing.T) {
		str := NewBasicAuth("testuser", "testpass").String()
		if !strings.Contains(str, "testuser") {
			t.Errorf("String() should contain username, got: %s", str)
		}
		if strings.Contains(str, "testpass") {
			t.Errorf("String() should not contain password, got: %s", str)
		}
	})
}

func TestBearerAuth(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		req := newGraphQLRequest(t)
		if err := NewBearerAuth("test-token").ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}
		assertHeader(t, req, "Authorization", "Bearer test-token")
	})

	t.Run("EmptyToken", func(t *testing.T) {
		err := NewBearerAuth("").ApplyAuth(newGraphQLRequest(t))
		assertErrorContains(t, err, "token is empty")
	})

	t.Run("StringMethod", func(t *testing.T) {
		if str := NewBearerAuth("test-token").String(); strings.Contains(str, "test-token") {
			t.Errorf("String() should not contain the actual token, got: %s", str)
		}
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		handler, err := CreateHandler(nil)
		if err != nil || handler != nil {
			t.Errorf("Expected nil handler and nil error, got %v, %v", handler, err)
		}
	})

	t.Run("BasicAuthCreation", func(t *testing.T) {
		handler, err := CreateHandler(&config.Auth{
			Type:  config.AuthTypeBasic,
			Basic: &config.BasicAuth{Username: "user", Password: "pass"},
		})
		if err != nil {
			t.Fatalf("CreateHandler failed: %v", err)
		}
		basicAuth, ok := handler.(*BasicAuth)
		if !ok {
			t.Fatalf("Expected *BasicAuth, got %T", handler)
		}
		if basicAuth.Username != "user" || basicAuth.Password != "pass" {
			t.Errorf("Auth not properly configured: %+v", basicAuth)
		}
	})

	t.Run("APIKeyAuthCreation", func(t *testing.T) {
		handler, err := CreateHandler(&config.Auth{
			Type:   config.AuthTypeAPIKey,
			APIKey: &config.APIKeyAuth{Header: "X-API-Key", Value: "test-api-key"},
		})
		if err != nil {
			t.Fatalf("CreateHandler failed: %v", err)
		}
		apiKeyAuth, ok := handler.(*APIKeyAuth)
		if !ok {
			t.Fatalf("Expected *APIKeyAuth, got %T", handler)
		}
		if apiKeyAuth.HeaderName != "X-API-Key" || apiKeyAuth.Value != "test-api-key" {
			t.Errorf("Auth not properly configured: %+v", apiKeyAuth)
		}
	})

	t.Run("BearerAuthCreation", func(t *testing.T) {
		handler, err := CreateHandler(&config.Auth{
			Type:   config.AuthTypeBearer,
			Bearer: &config.BearerAuth{Token: "test-token"},
		})
		if err != nil {
			t.Fatalf("CreateHandler failed: %v", err)
		}
		if bearerAuth, ok := handler.(*BearerAuth); !ok || bearerAuth.Token != "test-token" {
			t.Errorf("Auth not properly configured: %+v", handler)
		}
	})

	t.Run("MissingSection", func(t *testing.T) {
		_, err := CreateHandler(&config.Auth{Type: config.AuthTypeBearer})
		assertErrorContains(t, err, "bearer configuration is required")
		if !errors.Is(err, errors.ErrConfiguration) {
			t.Errorf("Expected ErrConfiguration, got %v", err)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := CreateHandler(&config.Auth{Type: "digest"})
		assertErrorContains(t, err, "unsupported auth type: digest")
	})
}

func TestRegisterAuthHandler(t *testing.T) {
	customType := config.AuthType("custom")

	RegisterAuthHandler(customType, func(cfg *config.Auth) (Handler, error) {
		return HandlerFunc(func(req *http.Request) error {
			req.Header.Set("X-Custom", "yes")
			return nil
		}), nil
	})

	handler, err := CreateHandler(&config.Auth{Type: customType})
	if err != nil {
		t.Fatalf("Failed to create custom handler: %v", err)
	}

	req := newGraphQLRequest(t)
	if err := handler.ApplyAuth(req); err != nil {
		t.Fatalf("ApplyAuth failed: %v", err)
	}
	assertHeader(t, req, "X-Custom", "yes")
}
