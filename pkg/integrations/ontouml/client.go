package ontouml

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ontouml/ontokit/pkg/buildinfo"
	"github.com/ontouml/ontokit/pkg/cache"
	oerrors "github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/httputil"
	"github.com/ontouml/ontokit/pkg/integrations"
	"github.com/ontouml/ontokit/pkg/schema"
)

// DefaultURL is the public OntoUML server.
const DefaultURL = "https://ontouml.herokuapp.com"

// Server endpoints.
const (
	EndpointVerify        = "/v1/verify"
	EndpointTransformGUFO = "/v1/transform/gufo"
	EndpointTransformDB   = "/v1/transform/db"
	EndpointTransformOBDA = "/v1/transform/obda"
)

// Client talks to one OntoUML server.
//
// All methods are safe for concurrent use as long as the confirm function
// is.
type Client struct {
	*integrations.Client
	baseURL string
	keyer   cache.Keyer
	confirm httputil.ConfirmFunc
	refresh bool
	logger  *log.Logger
}

// NewClient creates a client for the server at baseURL ([DefaultURL] when
// empty). A nil backend disables caching of transform responses.
func NewClient(baseURL string, backend cache.Cache, cacheTTL time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		Client:  integrations.NewClient(backend, cacheTTL, map[string]string{"User-Agent": buildinfo.UserAgent()}),
		baseURL: strings.TrimRight(baseURL, "/"),
		keyer:   cache.NewDefaultKeyer(),
		logger:  log.Default(),
	}
}

// WithConfirm sets the function asked before resending a request that
// failed with a retryable error. Without one, failures are returned at once.
func (c *Client) WithConfirm(fn httputil.ConfirmFunc) *Client {
	c.confirm = fn
	return c
}

// WithTimeout replaces the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.WithHTTPClient(integrations.NewHTTPClient(d))
	return c
}

// WithRefresh makes transforms bypass (but still update) the cache.
func (c *Client) WithRefresh(refresh bool) *Client {
	c.refresh = refresh
	return c
}

// WithLogger sets the logger used for request tracing.
func (c *Client) WithLogger(l *log.Logger) *Client {
	if l != nil {
		c.logger = l
	}
	return c
}

// BaseURL returns the server URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Verify asks the server to check doc and returns its raw JSON report.
func (c *Client) Verify(ctx context.Context, doc *schema.Document) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrCodeInternal, err, MsgUnknownRequest)
	}
	return c.post(ctx, EndpointVerify, body, MsgBadRequest)
}

// TransformGUFO transforms doc to gUFO and returns the server's response.
func (c *Client) TransformGUFO(ctx context.Context, doc *schema.Document, opts GUFOOptions) ([]byte, error) {
	return c.transform(ctx, EndpointTransformGUFO, opts, doc)
}

// TransformDB transforms doc to a relational schema.
func (c *Client) TransformDB(ctx context.Context, doc *schema.Document, opts DBOptions) ([]byte, error) {
	return c.transform(ctx, EndpointTransformDB, opts, doc)
}

// TransformOBDA transforms doc to an OBDA mapping.
func (c *Client) TransformOBDA(ctx context.Context, doc *schema.Document, opts OBDAOptions) ([]byte, error) {
	return c.transform(ctx, EndpointTransformOBDA, opts, doc)
}

type transformRequest struct {
	Options any              `json:"options"`
	Model   *schema.Document `json:"model"`
}

func (c *Client) transform(ctx context.Context, endpoint string, opts any, doc *schema.Document) ([]byte, error) {
	body, err := json.Marshal(transformRequest{Options: opts, Model: doc})
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrCodeInternal, err, MsgUnknownRequest)
	}
	key := c.keyer.TransformKey(c.baseURL, endpoint, body)
	return c.Cached(ctx, key, c.refresh, func() ([]byte, error) {
		return c.post(ctx, endpoint, body, MsgTransformFailed)
	})
}

func (c *Client) post(ctx context.Context, endpoint string, body []byte, badRequest string) ([]byte, error) {
	var data []byte
	attempt := 0
	err := httputil.RetryConfirmed(ctx, c.confirm, func() error {
		attempt++
		c.logger.Debug("posting to server", "endpoint", endpoint, "bytes", len(body), "attempt", attempt)
		resp, err := c.PostJSON(ctx, c.baseURL+endpoint, body)
		if err != nil {
			return classify(err, badRequest)
		}
		data = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
