// ABOUTME: Authenticated HTTP gateway client for the Inoreader reader API
// ABOUTME: One session per client; typed read/write operations over Request

package inoreader

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lexlapax/go-llms/pkg/errors"
)

// Well-known stream and state identifiers of the reader API.
const (
	StreamReadingList = "user/-/state/com.google/reading-list"
	StreamSearch      = "user/-/state/com.google/search"
	StateRead         = "user/-/state/com.google/read"

	// FeedIDPrefix marks subscription ids that refer to a feed.
	FeedIDPrefix = "feed/"
)

const (
	authTokenPrefix       = "Auth="
	cacheKeySubscriptions = "subscription_list"
)

// Client is an authenticated Inoreader session. Create one with Connect,
// use it for a strictly sequential series of calls, and Close it when done.
// A Client is not meant to be shared across tool invocations; the
// subscription cache is the only cross-session state.
type Client struct {
	cfg        Config
	httpClient *http.Client
	authToken  string
	cache      *subscriptionCache
	log        *slog.Logger
}

// Connect builds the transport and performs the ClientLogin handshake.
// The TLS certificate chain of the endpoint is intentionally not verified;
// the client trusts the configured endpoint as-is.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // endpoint trusted without verification
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport},
		cache:      getSubscriptionCache(),
		log:        log,
	}

	if err := client.authenticate(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Close releases the underlying transport. Safe to call after a failed
// Connect.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// authenticate posts the configured credentials to the ClientLogin endpoint
// and extracts the session token from the Auth= line of the response.
func (c *Client) authenticate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	form := url.Values{
		"Email":  {c.cfg.Username},
		"Passwd": {c.cfg.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build ClientLogin request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("AppId", c.cfg.AppID)
	req.Header.Set("AppKey", c.cfg.AppKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "ClientLogin request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read ClientLogin response")
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("authentication rejected", slog.Int("status_code", resp.StatusCode))
		return NewAuthenticationError(resp.StatusCode, string(body))
	}

	for _, line := range strings.Split(string(body), "\n") {
		if strings.HasPrefix(line, authTokenPrefix) {
			c.authToken = strings.TrimRight(line[len(authTokenPrefix):], "\r")
			break
		}
	}
	if c.authToken == "" {
		return ErrMissingToken
	}
	c.log.Debug("authenticated with Inoreader", slog.String("username", c.cfg.Username))
	return nil
}

// Request issues a single API call against baseURL/endpoint with the fixed
// per-request timeout. Non-200 statuses become an APIRequestError; on 200
// the body is returned as a tagged Response.
func (c *Client) Request(ctx context.Context, method, endpoint string, params url.Values, form url.Values) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	requestURL := c.cfg.BaseURL + "/" + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body io.Reader
	if len(form) > 0 {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build API request")
	}
	req.Header.Set("Authorization", "GoogleLogin auth="+c.authToken)
	req.Header.Set("AppId", c.cfg.AppID)
	req.Header.Set("AppKey", c.cfg.AppKey)
	if len(form) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "API request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read API response")
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("API request failed",
			slog.String("endpoint", endpoint),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, NewAPIRequestError(resp.StatusCode, string(data))
	}

	return &Response{
		statusCode: resp.StatusCode,
		body:       data,
		isJSON:     isJSONContentType(resp.Header.Get("Content-Type")),
	}, nil
}

// SubscriptionList returns the user's feed subscriptions. Results are
// memoized in the shared TTL cache; a hit skips the network entirely.
func (c *Client) SubscriptionList(ctx context.Context) ([]Subscription, error) {
	if subs, ok := c.cache.Get(cacheKeySubscriptions); ok {
		c.log.Debug("subscription list served from cache")
		return subs, nil
	}

	params := url.Values{"output": {"json"}}
	resp, err := c.Request(ctx, http.MethodGet, "subscription/list", params, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Subscriptions []Subscription `json:"subscriptions"`
	}
	if resp.IsJSON() {
		if err := resp.Decode(&payload); err != nil {
			return nil, NewMalformedResponseError("subscription/list", err)
		}
	}
	if payload.Subscriptions == nil {
		payload.Subscriptions = []Subscription{}
	}

	c.cache.Set(cacheKeySubscriptions, payload.Subscriptions, c.cfg.CacheTTL)
	return payload.Subscriptions, nil
}

// StreamContents returns items from a stream. An empty StreamID reads the
// combined reading list. A plain-text response body is treated as an empty
// stream, not an error.
func (c *Client) StreamContents(ctx context.Context, opts StreamOptions) ([]Item, error) {
	params := url.Values{
		"n":      {strconv.Itoa(c.clampCount(opts.Count))},
		"output": {"json"},
	}
	if opts.ExcludeRead {
		params.Set("xt", StateRead)
	}
	if opts.NewerThan > 0 {
		// The upstream key reads "older than" but acts as a newer-than
		// floor; the documented behavior wins.
		params.Set("ot", strconv.FormatInt(opts.NewerThan, 10))
	}

	endpoint := "stream/contents/" + StreamReadingList
	if opts.StreamID != "" {
		endpoint = "stream/contents/" + opts.StreamID
	}
	return c.fetchItems(ctx, http.MethodGet, endpoint, params, nil)
}

// StreamItemContents batch-fetches full content for explicit item ids.
// Empty input short-circuits without a network call.
func (c *Client) StreamItemContents(ctx context.Context, ids []string) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	params := url.Values{"output": {"json"}}
	form := url.Values{"i": ids}
	return c.fetchItems(ctx, http.MethodPost, "stream/items/contents", params, form)
}

// MarkAsRead tags the given items with the read state. Success is defined
// by the endpoint answering with the literal body "OK". Empty input is a
// success without I/O.
func (c *Client) MarkAsRead(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	form := url.Values{
		"i": ids,
		"a": {StateRead},
	}
	resp, err := c.Request(ctx, http.MethodPost, "edit-tag", nil, form)
	if err != nil {
		return false, err
	}
	return resp.Text() == "OK", nil
}

// Search queries the search stream with the same clamping and newer-than
// rules as StreamContents.
func (c *Client) Search(ctx context.Context, query string, count int, newerThan int64) ([]Item, error) {
	params := url.Values{
		"q":      {query},
		"n":      {strconv.Itoa(c.clampCount(count))},
		"output": {"json"},
	}
	if newerThan > 0 {
		params.Set("ot", strconv.FormatInt(newerThan, 10))
	}
	return c.fetchItems(ctx, http.MethodGet, "stream/contents/"+StreamSearch, params, nil)
}

// UnreadCounts returns the per-stream unread counters.
func (c *Client) UnreadCounts(ctx context.Context) ([]UnreadCount, error) {
	params := url.Values{"output": {"json"}}
	resp, err := c.Request(ctx, http.MethodGet, "unread-count", params, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		UnreadCounts []UnreadCount `json:"unreadcounts"`
	}
	if resp.IsJSON() {
		if err := resp.Decode(&payload); err != nil {
			return nil, NewMalformedResponseError("unread-count", err)
		}
	}
	if payload.UnreadCounts == nil {
		payload.UnreadCounts = []UnreadCount{}
	}
	return payload.UnreadCounts, nil
}

func (c *Client) fetchItems(ctx context.Context, method, endpoint string, params, form url.Values) ([]Item, error) {
	resp, err := c.Request(ctx, method, endpoint, params, form)
	if err != nil {
		return nil, err
	}
	if !resp.IsJSON() {
		// Malformed or empty upstream responses arrive as plain text.
		return []Item{}, nil
	}

	var payload struct {
		Items []Item `json:"items"`
	}
	if err := resp.Decode(&payload); err != nil {
		return nil, NewMalformedResponseError(endpoint, err)
	}
	if payload.Items == nil {
		payload.Items = []Item{}
	}
	return payload.Items, nil
}

func (c *Client) clampCount(count int) int {
	if c.cfg.MaxArticles > 0 && count > c.cfg.MaxArticles {
		return c.cfg.MaxArticles
	}
	return count
}
