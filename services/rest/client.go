package rest

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

// DefaultBaseURL is the backend address used when API_URL is not set
const DefaultBaseURL = "http://localhost:8000"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client sends requests to the activities backend. Cookies set by the backend
// are kept and sent on later requests, the same way a browser would.
type Client struct {
	logger     *zap.Logger
	baseURL    string
	httpClient *http.Client
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a Client for the backend at API_URL
func NewClient(logger *zap.Logger, env *environment.Env, cfg *config.AppConfig) (*Client, error) {
	baseURL := strings.TrimRight(env.GetOrDefault(environment.APIURL, DefaultBaseURL), "/")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid backend url %s", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not create cookie jar")
	}

	return &Client{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.API.Timeout,
		},
	}, nil
}

// do sends a request to path with the given query and decodes a 2xx body into out.
// A nil out skips decoding. Non-2xx responses are returned as *services.APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return errors.Wrapf(err, "could not create request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request %s %s failed", method, path)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "could not read response of %s %s", method, path)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &services.APIError{Status: res.StatusCode}
		var errRes errorResponse
		if json.Unmarshal(body, &errRes) == nil {
			apiErr.Detail = errRes.Detail
		}
		c.logger.Debug("backend rejected request",
			zap.String("method", method), zap.String("path", path), zap.Int("status", res.StatusCode))
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(services.ErrInvalidResponse, "%s %s: %s", method, path, err)
	}

	return nil
}

// activityPath builds the path of an action on the named activity
func activityPath(activity, action string) string {
	return "/activities/" + url.PathEscape(activity) + "/" + action
}
