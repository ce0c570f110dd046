// client.go contains the session client for instagram's private web api, it
// holds the session tokens and performs exactly one request per operation.

package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"instaweb/internal/components/assert"
	"instaweb/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_client_grab_tokens         = "client.grab-tokens"
	report_client_login               = "client.login"
	report_client_set_like            = "client.set-like"
	report_client_set_comment         = "client.set-comment"
	report_client_set_follow          = "client.set-follow"
	report_client_unset_follow        = "client.unset-follow"
	report_client_get_self_feed       = "client.get-self-feed"
	report_client_get_feed_by_hashtag = "client.get-feed-by-hashtag"
)

var tracer = otel.Tracer("instagram")
var meter = otel.Meter("instagram")
var requestCounter, _ = meter.Int64Counter(
	"instagram.requests",
	metric.WithDescription("operations performed against the web api, by outcome"),
)

type Options struct {
	// BaseURL defaults to WebRoot.
	BaseURL          string
	// RootURL defaults to TokenRoot.
	RootURL          string
	// Session seeds the client with tokens obtained earlier.
	Session          Tokens
	// Headers defaults to DefaultHeaders().
	Headers          Headers
	// Queries defaults to DefaultQueries().
	Queries          Queries
	// Timeout of a single request, 0 means no timeout.
	Timeout          time.Duration
	// CloudflareBypass wraps the transport with a browser-like TLS fingerprint.
	CloudflareBypass bool

	Telemetry     telemetry.API
	MessageOutput telemetry.MessageOutput
}

type Client struct {
	http    *resty.Client
	rootUrl string
	headers Headers
	queries Queries
	tel     telemetry.API

	mutex  sync.RWMutex
	tokens Tokens
}

func NewClient(opts Options) (*Client, error) {
	assert.NotNil(opts.Telemetry, "Options.Telemetry")

	tel := telemetry.NewScopedAPI("instagram", opts.Telemetry)

	if opts.BaseURL == "" {
		opts.BaseURL = WebRoot
	}
	if opts.RootURL == "" {
		opts.RootURL = TokenRoot
	}
	if opts.Headers == nil {
		opts.Headers = DefaultHeaders()
	}
	if opts.Queries == (Queries{}) {
		opts.Queries = DefaultQueries()
	}

	for _, link := range []string{opts.BaseURL, opts.RootURL} {
		parsed, err := url.Parse(link)
		if err != nil {
			return nil, fmt.Errorf("instagram: parse url: %w", err)
		}
		if !parsed.IsAbs() {
			return nil, fmt.Errorf("instagram: url is not absolute: %q", link)
		}
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseURL)
	// the Cookie header is composed from the session tokens, a jar would
	// append a second copy of them.
	httpClient.SetCookieJar(nil)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	telemetry.InstrumentResty(httpClient, "instagram/http", tel, opts.MessageOutput)

	return &Client{
		http:    httpClient,
		rootUrl: opts.RootURL,
		headers: opts.Headers.Clone(),
		queries: opts.Queries,
		tel:     tel,
		tokens:  opts.Session,
	}, nil
}

// Session returns a snapshot of the current tokens.
func (c *Client) Session() Tokens {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.tokens
}

// SetSession replaces the current tokens.
func (c *Client) SetSession(tokens Tokens) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.tokens = tokens
}

func (c *Client) updateSession(update func(t *Tokens)) Tokens {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	update(&c.tokens)
	return c.tokens
}

// Headers returns the headers an authenticated request made right now would carry.
func (c *Client) Headers() Headers {
	return AuthHeaders(c.headers, c.Session())
}

func (c *Client) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, fmt.Sprintf("client:%s", name))
}

// finish records the outcome of an operation and ends its span.
func (c *Client) finish(ctx context.Context, span trace.Span, reportId string, err error) {
	defer span.End()

	outcome := "ok"
	if err != nil {
		outcome = "failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.tel.ReportWarning(reportId, err)
	}
	requestCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", reportId),
		attribute.String("outcome", outcome),
	))
}

func failure(op string, res *resty.Response, err error) *Failure {
	f := &Failure{Op: op, Err: err}
	if res != nil && res.RawResponse != nil {
		f.Status = res.StatusCode()
		f.Body = res.Body()
	}
	return f
}

// GrabTokens loads the unauthenticated root page and extracts the csrf and
// mid tokens from its cookies. On success they replace the client's csrf and
// mid, the session id is kept.
func (c *Client) GrabTokens(ctx context.Context) (tokens Tokens, err error) {
	ctx, span := c.start(ctx, "GrabTokens")
	defer func() { c.finish(ctx, span, report_client_grab_tokens, err) }()

	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers).
		Get(c.rootUrl)
	if err != nil {
		return Tokens{}, failure(report_client_grab_tokens, res, err)
	}

	setCookie := res.Header().Values("Set-Cookie")
	csrf := ExtractCookie(cookieCSRF, setCookie)
	mid := ExtractCookie(cookieMid, setCookie)
	if len(csrf) < 1 || len(mid) < 1 {
		return Tokens{}, failure(
			report_client_grab_tokens, res,
			fmt.Errorf("csrftoken (%d) or mid (%d): %w", len(csrf), len(mid), ErrMissingToken),
		)
	}

	tokens = c.updateSession(func(t *Tokens) {
		t.CSRF = csrf[0]
		t.Mid = mid[0]
	})
	return tokens, nil
}

// Login authenticates with username and password. The current csrf and mid are
// sent without a session id, on success the refreshed csrf and the new
// session id are stored on the client and returned.
func (c *Client) Login(ctx context.Context, username, password string) (tokens Tokens, err error) {
	ctx, span := c.start(ctx, "Login")
	defer func() { c.finish(ctx, span, report_client_login, err) }()

	current := c.Session()
	headers := AuthHeaders(c.headers, Tokens{CSRF: current.CSRF, Mid: current.Mid})

	values := url.Values{
		"username": {username},
		"password": {password},
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(values.Encode()).
		Post(loginPath)
	if err != nil {
		return Tokens{}, failure(report_client_login, res, err)
	}
	if res.StatusCode() != 200 {
		return Tokens{}, failure(report_client_login, res, ErrUnexpectedStatus)
	}

	setCookie := res.Header().Values("Set-Cookie")
	sessionid := ExtractCookie(cookieSessionID, setCookie)
	csrf := ExtractCookie(cookieCSRF, setCookie)
	if len(csrf) < 1 || len(sessionid) < 1 {
		return Tokens{}, failure(
			report_client_login, res,
			fmt.Errorf("csrftoken (%d) or sessionid (%d): %w", len(csrf), len(sessionid), ErrMissingToken),
		)
	}
	c.tel.ReportDebug(report_client_login, res.String())

	tokens = c.updateSession(func(t *Tokens) {
		t.CSRF = csrf[0]
		t.SessionID = sessionid[0]
	})
	return tokens, nil
}

type statusBody struct {
	Status string `json:"status"`
}

// action performs an authenticated POST and accepts only a 200 whose body
// carries `"status": "ok"`.
func (c *Client) action(ctx context.Context, op, path, body string) (Payload, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.Headers())
	if body != "" {
		req.SetBody(body)
	}

	res, err := req.Post(path)
	if err != nil {
		return nil, failure(op, res, err)
	}
	if res.StatusCode() != 200 {
		return nil, failure(op, res, ErrUnexpectedStatus)
	}

	var status statusBody
	err = json.Unmarshal(res.Body(), &status)
	if err != nil {
		return nil, failure(op, res, fmt.Errorf("%w: %w", ErrNotOk, err))
	}
	if status.Status != "ok" {
		return nil, failure(op, res, fmt.Errorf("%w: %q", ErrNotOk, status.Status))
	}

	c.tel.ReportDebug(op, res.String())
	return Payload(res.Body()), nil
}
