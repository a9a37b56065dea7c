package auth

import (
	"fmt"
	"net/http"

	"github.com/saturnines/gqlclient/pkg/config"
	"github.com/saturnines/gqlclient/pkg/errors"
)

// Handler decorates an outgoing GraphQL request with credentials.
type Handler interface {
	ApplyAuth(req *http.Request) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(req *http.Request) error

// ApplyAuth calls f(req).
func (f HandlerFunc) ApplyAuth(req *http.Request) error {
	return f(req)
}

// DefaultRegistry backs CreateHandler and RegisterAuthHandler.
var DefaultRegistry = NewAuthRegistry()

// CreateHandler builds a Handler from config using DefaultRegistry. A nil
// config means no authentication and returns a nil Handler.
func CreateHandler(authConfig *config.Auth) (Handler, error) {
	if authConfig == nil {
		return nil, nil
	}
	return DefaultRegistry.Create(authConfig)
}

// RegisterAuthHandler adds or replaces a creator on DefaultRegistry.
func RegisterAuthHandler(authType config.AuthType, creator AuthCreator) {
	DefaultRegistry.Register(authType, creator)
}

func missing(what, op string) error {
	return errors.WrapError(fmt.Errorf("%s is empty", what), errors.ErrAuthentication, op)
}
