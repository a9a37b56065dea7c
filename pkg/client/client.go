// Package client is the entry point for building and sending field
// selection queries.
//
//	c, err := client.New(client.Config{Host: "https://api.example.com/graphql"})
//	text, err := c.DictToQuery(tree, query.Args{{Name: "user_id", Value: "130897273"}})
//	data, err := c.Query(ctx, text)
package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/saturnines/gqlclient/pkg/auth"
	"github.com/saturnines/gqlclient/pkg/config"
	"github.com/saturnines/gqlclient/pkg/errors"
	"github.com/saturnines/gqlclient/pkg/query"
	"github.com/saturnines/gqlclient/pkg/transport/graphql"
)

// Config is fixed at construction.
type Config struct {
	Host string
	// ForceTyping makes Execute check every leaf of the decoded response
	// against the kind declared in the field tree.
	ForceTyping bool
	// Timeout bounds each round trip. Zero means no timeout.
	Timeout time.Duration
	Headers map[string]string
}

// Client builds query text and sends it to a single endpoint. It is safe
// for concurrent use.
type Client struct {
	cfg       Config
	transport *graphql.Client
	logger    *zap.Logger
	buildOpts []query.BuildOption
}

// New validates cfg and creates a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.WrapError(fmt.Errorf("host is required"), errors.ErrConfiguration, "create client")
	}
	if _, err := url.ParseRequestURI(cfg.Host); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "create client")
	}
	if cfg.Timeout < 0 {
		return nil, errors.WrapError(fmt.Errorf("timeout must not be negative"), errors.ErrConfiguration, "create client")
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	cfg.Headers = headers

	requestOpts := []graphql.BuilderOption{graphql.WithHeaders(headers)}
	if o.authHandler != nil {
		requestOpts = append(requestOpts, graphql.WithAuthHandler(o.authHandler))
	}

	transportOpts := []graphql.ClientOption{
		graphql.WithLogger(o.logger),
		graphql.WithRequestOptions(requestOpts...),
	}
	if o.doer != nil {
		transportOpts = append(transportOpts, graphql.WithHTTPDoer(o.doer))
	}
	if cfg.Timeout > 0 {
		transportOpts = append(transportOpts, graphql.WithTimeout(cfg.Timeout))
	}
	if o.userAgent != "" {
		transportOpts = append(transportOpts, graphql.WithUserAgent(o.userAgent))
	}

	return &Client{
		cfg:       cfg,
		transport: graphql.NewClient(cfg.Host, transportOpts...),
		logger:    o.logger,
		buildOpts: o.buildOpts,
	}, nil
}

// FromConfig creates a Client from a loaded YAML configuration, including
// its auth section.
func FromConfig(cfg *config.Client, opts ...Option) (*Client, error) {
	h, err := auth.CreateHandler(cfg.Auth)
	if err != nil {
		return nil, err
	}
	if h != nil {
		opts = append([]Option{WithAuthHandler(h)}, opts...)
	}
	return New(Config{
		Host:        cfg.Host,
		ForceTyping: cfg.ForceTyping,
		Timeout:     cfg.Timeout,
		Headers:     cfg.Headers,
	}, opts...)
}

// Config returns the configuration the client was created with.
func (c *Client) Config() Config {
	return c.cfg
}

// DictToQuery renders tree and args as query text using the client's
// build options.
func (c *Client) DictToQuery(tree *query.Tree, args query.Args) (string, error) {
	return query.Build(tree, args, c.buildOpts...)
}

// Query sends text and returns the decoded data member of the response.
// With RawText it returns the body as a string instead. With
// SuppressErrors transport failures yield (nil, nil).
func (c *Client) Query(ctx context.Context, text string, opts ...QueryOption) (any, error) {
	qo := queryOptions{decode: true, raise: true}
	for _, opt := range opts {
		opt(&qo)
	}

	resp, err := c.transport.Send(ctx, text, graphql.SendOptions{Decode: qo.decode, RaiseOnError: qo.raise})
	if err != nil || resp == nil {
		return nil, err
	}
	if !qo.decode {
		return resp.Text(), nil
	}
	return resp.Data, nil
}

// QueryRaw is Query with RawText.
func (c *Client) QueryRaw(ctx context.Context, text string, opts ...QueryOption) (string, error) {
	v, err := c.Query(ctx, text, append(opts, RawText())...)
	if err != nil || v == nil {
		return "", err
	}
	return v.(string), nil
}

// Execute builds the query for tree and args, sends it and returns the
// decoded data. When ForceTyping is set the data is checked against tree.
// RawText has no effect here.
func (c *Client) Execute(ctx context.Context, tree *query.Tree, args query.Args, opts ...QueryOption) (any, error) {
	text, err := c.DictToQuery(tree, args)
	if err != nil {
		return nil, err
	}

	qo := queryOptions{raise: true}
	for _, opt := range opts {
		opt(&qo)
	}

	resp, err := c.transport.Send(ctx, text, graphql.SendOptions{Decode: true, RaiseOnError: qo.raise})
	if err != nil || resp == nil {
		return nil, err
	}

	if c.cfg.ForceTyping {
		if err := query.CheckTypes(tree, resp.Data); err != nil {
			c.logger.Debug("response failed type check", zap.Error(err))
			return nil, err
		}
	}
	return resp.Data, nil
}
