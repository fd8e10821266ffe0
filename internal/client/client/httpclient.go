package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
	"github.com/dmitrijs2005/jobboard/internal/netx"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	loginPath    = "/auth/login/"
	registerPath = "/auth/register/"
	refreshPath  = "/auth/refresh-token/"
)

// A request is sent at most twice: the original attempt and one retry after
// a successful refresh.
const (
	firstAttempt = 1
	retryAttempt = 2
)

var (
	errNoAccessInRefresh = errors.New("refresh response has no access token")
	errNoAccessInLogin   = errors.New("response has no access token")
)

// Options tune an HTTPClient. The zero value is usable.
type Options struct {
	// HTTPClient sends the requests. Timeouts are configured here.
	HTTPClient *http.Client

	Logger logging.Logger

	// OnSessionEnded is called after the credential store has been cleared
	// because no usable credential remains. The caller should send the user
	// back to login.
	OnSessionEnded func(ctx context.Context, reason error)
}

// HTTPClient is the authenticated API client. Safe for concurrent use.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	store          session.Store
	log            logging.Logger
	onSessionEnded func(ctx context.Context, reason error)

	refreshes singleflight.Group
}

// NewHTTPClient returns a client for the backend rooted at baseURL
// (e.g. "http://localhost:8000/api") that reads and writes tokens in store.
func NewHTTPClient(baseURL string, store session.Store, opts Options) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           opts.HTTPClient,
		store:          store,
		log:            opts.Logger,
		onSessionEnded: opts.OnSessionEnded,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c, nil
}

// Do runs req through the request pipeline. It returns the response for any
// 2xx status and an *HTTPError for any other status.
func (c *HTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, req, creds.AccessToken, firstAttempt)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || req.Public {
		return result(resp)
	}

	_, unauthorized := result(resp)

	token, err := c.renewAccessToken(ctx, creds.AccessToken, unauthorized)
	if err != nil {
		return nil, err
	}

	resp, err = c.send(ctx, req, token, retryAttempt)
	if err != nil {
		return nil, err
	}
	return result(resp)
}

// credentials reads the store. Tokens that can no longer be decrypted are
// discarded and the request proceeds unauthenticated.
func (c *HTTPClient) credentials(ctx context.Context) (session.Credentials, error) {
	creds, err := c.store.Get(ctx)
	if errors.Is(err, session.ErrUnreadable) {
		c.log.Warn(ctx, "discarding unreadable stored credentials", "error", err)
		if err := c.store.Clear(ctx); err != nil {
			return session.Credentials{}, fmt.Errorf("clear credentials: %w", err)
		}
		return session.Credentials{}, nil
	}
	if err != nil {
		return session.Credentials{}, fmt.Errorf("read credentials: %w", err)
	}
	return creds, nil
}

// renewAccessToken returns the access token the failed request should be
// retried with.
func (c *HTTPClient) renewAccessToken(ctx context.Context, usedToken string, unauthorized error) (string, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return "", err
	}

	// Another request refreshed while this one was in flight.
	if creds.AccessToken != "" && creds.AccessToken != usedToken {
		return creds.AccessToken, nil
	}

	// The session was already ended (and signalled) while this request
	// was in flight.
	if usedToken != "" && creds.IsZero() {
		return "", &SessionExpiredError{Cause: unauthorized}
	}

	if creds.RefreshToken == "" {
		return "", c.endSession(ctx, unauthorized)
	}

	return c.refresh(ctx, creds.RefreshToken)
}

// refresh exchanges refreshToken for a new access token. Concurrent callers
// holding the same refresh token share one exchange. The exchange is not
// tied to any single caller's cancellation; each caller still stops waiting
// when its own ctx is done.
func (c *HTTPClient) refresh(ctx context.Context, refreshToken string) (string, error) {
	shared := context.WithoutCancel(ctx)

	ch := c.refreshes.DoChan(refreshToken, func() (any, error) {
		return c.exchange(shared, refreshToken)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}
		return r.Val.(string), nil
	}
}

func (c *HTTPClient) exchange(ctx context.Context, refreshToken string) (string, error) {
	c.log.Info(ctx, "refreshing access token")

	pair, err := c.postRefresh(ctx, refreshToken)
	if err != nil {
		c.log.Warn(ctx, "token refresh failed", "error", err)
		return "", c.endSession(ctx, err)
	}

	next := session.Credentials{AccessToken: pair.Access, RefreshToken: refreshToken}
	if pair.Refresh != "" {
		next.RefreshToken = pair.Refresh
	}
	if err := c.store.Set(ctx, next); err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}

	c.log.Info(ctx, "access token refreshed", "rotated", pair.Refresh != "")
	return pair.Access, nil
}

// postRefresh is the dedicated refresh call. It bypasses the pipeline: no
// bearer header and no retry.
func (c *HTTPClient) postRefresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	req, err := NewJSONRequest(http.MethodPost, refreshPath, map[string]string{"refresh": refreshToken})
	if err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, req, "", firstAttempt)
	if err != nil {
		return nil, err
	}
	if _, err := result(resp); err != nil {
		return nil, err
	}

	var pair models.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, errNoAccessInRefresh
	}
	return &pair, nil
}

// endSession clears both tokens and emits the session-ended signal. It
// returns the error the caller must propagate.
func (c *HTTPClient) endSession(ctx context.Context, cause error) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "clear credentials", "error", err)
	}

	expired := &SessionExpiredError{Cause: cause}
	c.log.Warn(ctx, "session ended", "reason", cause)

	if c.onSessionEnded != nil {
		c.onSessionEnded(ctx, expired)
	}
	return expired
}

// send builds a fresh *http.Request from req and dispatches it. A bearer
// header is attached only when token is non-empty.
func (c *HTTPClient) send(ctx context.Context, req *Request, token string, attempt int) (*Response, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	hr, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.Path, err)
	}

	requestID := uuid.NewString()
	hr.Header.Set("Accept", "application/json")
	hr.Header.Set(common.RequestIDHeaderName, requestID)
	if req.ContentType != "" {
		hr.Header.Set("Content-Type", req.ContentType)
	}
	if token != "" {
		hr.Header.Set(common.AuthorizationHeaderName, common.BearerToken(token))
	}

	hresp, err := c.http.Do(hr)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.Path, ErrUnavailable, err)
	}
	defer hresp.Body.Close()

	data, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w: %w", req.Method, req.Path, ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request",
		"method", req.Method,
		"path", req.Path,
		"status", hresp.StatusCode,
		"attempt", attempt,
		"request_id", requestID,
	)

	return &Response{StatusCode: hresp.StatusCode, Header: hresp.Header, Body: data}, nil
}

func result(resp *Response) (*Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	return nil, &HTTPError{StatusCode: resp.StatusCode, Body: resp.Body}
}

// Login authenticates and stores the returned token pair.
func (c *HTTPClient) Login(ctx context.Context, creds models.LoginRequest) (*models.TokenPair, error) {
	req, err := NewJSONRequest(http.MethodPost, loginPath, creds)
	if err != nil {
		return nil, err
	}
	req.Public = true

	resp, err := c.Do(ctx, req)
	if err != nil {
		var he *HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusBadRequest || he.StatusCode == http.StatusUnauthorized) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, err
	}

	var pair models.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, fmt.Errorf("login: %w", errNoAccessInLogin)
	}

	if err := c.store.Set(ctx, session.Credentials{AccessToken: pair.Access, RefreshToken: pair.Refresh}); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}
	c.log.Info(ctx, "logged in")
	return &pair, nil
}

// Register creates an account. A 400 is returned as *ValidationError. When
// the backend answers with tokens they are stored and the user is logged in.
func (c *HTTPClient) Register(ctx context.Context, data models.RegisterRequest) (*models.TokenPair, error) {
	req, err := NewJSONRequest(http.MethodPost, registerPath, data)
	if err != nil {
		return nil, err
	}
	req.Public = true

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, AsValidation(err)
	}

	var pair models.TokenPair
	if err := resp.Decode(&pair); err != nil {
		return nil, err
	}

	if pair.Access != "" {
		if err := c.store.Set(ctx, session.Credentials{AccessToken: pair.Access, RefreshToken: pair.Refresh}); err != nil {
			return nil, fmt.Errorf("store credentials: %w", err)
		}
	}
	return &pair, nil
}

// Logout forgets the stored credentials. It does not emit the session-ended
// signal, which is reserved for sessions the client could not keep alive.
func (c *HTTPClient) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	c.log.Info(ctx, "logged out")
	return nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.call(ctx, NewRequest(http.MethodGet, path, params), out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, out any) error {
	req, err := NewJSONRequest(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return c.call(ctx, req, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body any, out any) error {
	req, err := NewJSONRequest(http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return c.call(ctx, req, out)
}

// PostMultipart sends form as multipart/form-data.
func (c *HTTPClient) PostMultipart(ctx context.Context, path string, form *netx.MultipartForm, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	return c.call(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, ContentType: contentType}, out)
}

func (c *HTTPClient) call(ctx context.Context, req *Request, out any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}
