package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrhaji1999/vandapay-sub001/infra/log/slogx"
	"github.com/mrhaji1999/vandapay-sub001/internal/errors"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// VandaPay REST (Service) Client.
//
// Applied uniformly to every outbound request:
//
//	[Authorization]: Bearer <token> ; when a credential is present
//
// .. and to every response:
//
//	[401|403] ⇒ session-expired hook + authentication error
//	no response ⇒ network error
//	other non-2xx ⇒ server message passthrough
//
// Errors are NEVER swallowed ; callers always receive the outcome.
type Client struct {
	base *url.URL
	opts Options
	// base URL misconfiguration ; surfaced once at startup
	// and again on every request attempt
	confErr *errors.Error
}

var ErrNoBaseURL = errors.Config(
	errors.Id("api_base_url_missing"),
	errors.Message("wallet: API base URL is not configured ; requests will fail"),
)

func NewClient(logger *slog.Logger, opts ...Option) *Client {

	c := &Client{
		opts: newOptions(logger, opts),
	}

	rawURL := strings.TrimSpace(c.opts.BaseURL)
	rawURL = strings.TrimSuffix(rawURL, "/")
	if rawURL == "" {
		c.confErr = ErrNoBaseURL
		c.opts.Logger.Warn(ErrNoBaseURL.Message)
		return c
	}

	base, err := url.Parse(rawURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		c.confErr = errors.Config(
			errors.Id("api_base_url_invalid"),
			errors.Message("wallet: invalid API base URL %q", rawURL),
		)
		c.opts.Logger.Warn(c.confErr.Message)
		return c
	}

	c.base = base
	return c
}

// BaseURL returns the resolved API base URL, "" when misconfigured.
func (c *Client) BaseURL() string {
	if c.base == nil {
		return ""
	}
	return c.base.String()
}

// Get issues an authorized GET request and decodes the response into [out].
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues an authorized POST request with a JSON [body]
// and decodes the response into [out].
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Do performs a single round-trip with a JSON [body]. [out],
// when non-nil, receives the decoded JSON response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {

	var payload io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.BadRequest(
				errors.Id("request_encode"),
				errors.Message("wallet: encode request body: %v", err),
			)
		}
		payload = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.do(ctx, method, path, query, payload, contentType, out)
}

// Upload performs an authorized multipart POST, sending [content]
// as file [filename] under form field [field].
func (c *Client) Upload(ctx context.Context, path, field, filename string, content []byte, out any) error {

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	fw, err := mw.CreateFormFile(field, filename)
	if err == nil {
		_, err = fw.Write(content)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return errors.BadRequest(
			errors.Id("request_encode"),
			errors.Message("wallet: encode upload form: %v", err),
		)
	}

	return c.do(ctx, http.MethodPost, path, nil, &form, mw.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload io.Reader, contentType string, out any) error {

	if c.confErr != nil {
		// fail fast ; do NOT send to an undefined endpoint
		return c.confErr
	}

	endpoint := c.endpoint(path, query)

	if _, deadline := ctx.Deadline(); !deadline && c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return errors.BadRequest(
			errors.Message("wallet: build request: %v", err),
		)
	}

	requestId := uuid.NewString()
	req.Header.Set(model.H1_Accept, "application/json")
	req.Header.Set(model.H1_X_Request_ID, requestId)
	req.Header.Set(model.H1_User_Agent, c.opts.UserAgent)
	if contentType != "" {
		req.Header.Set(model.H1_Content_Type, contentType)
	}

	// attach bearer unless the caller already did
	token := ""
	if creds := c.opts.Credentials; creds != nil {
		token = creds.Token()
	}
	if token != "" && model.GetHeaderH1(req.Header, model.H1_Authorization) == "" {
		req.Header.Set(model.H1_Authorization, model.BearerSchema+token)
	}

	start := model.LocalTime.Now()
	res, err := c.opts.HTTPClient.Do(req)

	if err != nil {
		// no response received at all
		nerr := errors.FromTransport(err)
		c.opts.Logger.Warn("request failed",
			slog.String("rid", requestId),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("err", nerr),
		)
		return nerr
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.FromTransport(err)
	}

	c.opts.Logger.Debug("request",
		slog.String("rid", requestId),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("code", res.StatusCode),
		slog.Duration("took", time.Since(start)),
		slogx.Token("bearer", token),
	)

	if res.StatusCode == http.StatusUnauthorized ||
		res.StatusCode == http.StatusForbidden {
		// Authentication failure destroys the session ; the hook
		// receives the rejected bearer so a response landing after
		// a re-login cannot destroy the newer session.
		if expire := c.opts.OnSessionExpired; expire != nil && token != "" {
			expire(token)
		}
		return c.statusError(res.StatusCode, data)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return c.statusError(res.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err = json.Unmarshal(data, out); err != nil {
			return errors.New(
				errors.Status("BAD_RESPONSE"),
				errors.Code(int32(res.StatusCode)),
				errors.Message("wallet: malformed response body"),
			)
		}
	}

	return nil
}

// statusError shapes a non-2xx response into an *Error:
// the server-provided message when present, generic otherwise.
func (c *Client) statusError(code int, body []byte) *errors.Error {
	err, ok := errors.Parse(string(body))
	if !ok || err == nil || err.Message == "" {
		err = errors.New(
			errors.Message("wallet: request failed"),
		)
	}
	if err.Code == 0 {
		err.Code = int32(code)
	}
	if err.Status == "" {
		errors.Status(statusText(code))(err)
	}
	return err
}

func (c *Client) endpoint(path string, query url.Values) string {
	ref := *c.base
	ref.Path = strings.TrimSuffix(ref.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		ref.RawQuery = query.Encode()
	}
	return ref.String()
}

func statusText(code int) string {
	text := http.StatusText(code)
	text = strings.ToUpper(text)
	return strings.ReplaceAll(text, " ", "_")
}
