package client

import (
	"go.uber.org/zap"

	"github.com/saturnines/gqlclient/pkg/auth"
	"github.com/saturnines/gqlclient/pkg/query"
	"github.com/saturnines/gqlclient/pkg/transport/graphql"
)

type options struct {
	logger      *zap.Logger
	doer        graphql.HTTPDoer
	authHandler auth.Handler
	userAgent   string
	buildOpts   []query.BuildOption
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(doer graphql.HTTPDoer) Option {
	return func(o *options) {
		o.doer = doer
	}
}

// WithAuthHandler authenticates every request.
func WithAuthHandler(h auth.Handler) Option {
	return func(o *options) {
		o.authHandler = h
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithBuildOptions applies query build options to DictToQuery and Execute.
func WithBuildOptions(opts ...query.BuildOption) Option {
	return func(o *options) {
		o.buildOpts = append(o.buildOpts, opts...)
	}
}

type queryOptions struct {
	decode bool
	raise  bool
}

// QueryOption configures a single Query call.
type QueryOption func(*queryOptions)

// RawText returns the response body verbatim instead of the decoded data.
func RawText() QueryOption {
	return func(o *queryOptions) {
		o.decode = false
	}
}

// SuppressErrors turns transport failures into an absent result. Decoding
// errors are still returned.
func SuppressErrors() QueryOption {
	return func(o *queryOptions) {
		o.raise = false
	}
}
