package graphql

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/saturnines/gqlclient/pkg/errors"
)

// HTTPDoer is the minimal interface the client needs, satisfied by
// *http.Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// SendOptions controls a single Send call.
type SendOptions struct {
	// Decode parses the JSON envelope and returns its data member. When false
	// the body is returned verbatim in Response.Raw.
	Decode bool
	// RaiseOnError returns transport failures as errors. When false they are
	// logged and Send returns a nil Response and a nil error.
	RaiseOnError bool
}

// Client executes GraphQL operations against one endpoint. It never
// retries.
type Client struct {
	doer        HTTPDoer
	endpoint    string
	builderOpts []BuilderOption
	logger      *zap.Logger
}

// NewClient creates a client for endpoint. Without options it uses a fresh
// *http.Client with no timeout.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		doer:     &http.Client{},
		endpoint: endpoint,
		logger:   zap.NewNop(),
	}
	c.ApplyOptions(opts...)
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Execute sends a built request.
func (c *Client) Execute(req *http.Request) (*http.Response, error) {
	return c.doer.Do(req)
}

// Send posts text as {"query": text} and reads the response.
func (c *Client) Send(ctx context.Context, text string, opts SendOptions) (*Response, error) {
	log := c.logger.With(zap.String("endpoint", c.endpoint))

	req, err := NewBuilder(c.endpoint, text, c.builderOpts...).Build(ctx)
	if err != nil {
		return c.failed(log, opts, errors.WrapError(err, errors.ErrTransport, "build request"))
	}

	log.Debug("sending graphql query", zap.Int("query_bytes", len(text)))
	resp, err := c.Execute(req)
	if err != nil {
		return c.failed(log, opts, errors.WrapError(err, errors.ErrTransport, "post query"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failed(log, opts, errors.WrapError(err, errors.ErrTransport, "read response body"))
	}
	log.Debug("received graphql response",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(body)),
	)

	out := &Response{
		StatusCode: resp.StatusCode,
		Raw:        body,
	}
	if !opts.Decode {
		return out, nil
	}

	data, messages, err := decodeEnvelope(body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrDecoding, fmt.Sprintf("decode response (HTTP %d)", resp.StatusCode))
	}
	out.Data = data
	out.Errors = messages
	if len(messages) > 0 {
		log.Debug("graphql response carried errors", zap.Strings("errors", messages))
	}
	return out, nil
}

func (c *Client) failed(log *zap.Logger, opts SendOptions, err error) (*Response, error) {
	if opts.RaiseOnError {
		return nil, err
	}
	log.Warn("graphql request failed, returning no result", zap.Error(err))
	return nil, nil
}
