package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	apperrors "gag-stock-bot/internal/common/errors"
	"gag-stock-bot/internal/common/logger"
	"gag-stock-bot/internal/common/metrics"
)

// FallbackName is used whenever a display name cannot be resolved.
const FallbackName = "User"

// Client talks to the Messenger Send API and the Graph user lookup.
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	token      string
	limiter    *rate.Limiter
	log        zerolog.Logger
}

type Options struct {
	BaseURL string
	Version string
	Token   string
	RPS     float64
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		version:    opts.Version,
		token:      opts.Token,
		limiter:    rate.NewLimiter(limit, 1),
		log:        logger.With("messenger"),
	}
}

type recipient struct {
	ID string `json:"id"`
}

type message struct {
	Text string `json:"text"`
}

type sendRequest struct {
	Recipient recipient `json:"recipient"`
	Message   message   `json:"message"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Send delivers a text message to a page-scoped user id.
func (c *Client) Send(ctx context.Context, id, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperrors.NewMessengerAPIError("send", err)
	}

	body, err := json.Marshal(sendRequest{Recipient: recipient{ID: id}, Message: message{Text: text}})
	if err != nil {
		return apperrors.NewMessengerAPIError("send", err)
	}

	endpoint := fmt.Sprintf("%s/%s/me/messages?%s", c.baseURL, c.version, url.Values{"access_token": {c.token}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewMessengerAPIError("send", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		metrics.MessagesFailed.Inc()
		c.log.Error().Err(err).Str("recipient", id).Msg("Failed to send message")
		return apperrors.NewMessengerAPIError("send", err).WithDetail("recipient", id)
	}
	metrics.MessagesSent.Inc()
	return nil
}

// UserName resolves a display name, returning FallbackName on any failure.
func (c *Client) UserName(ctx context.Context, id string) string {
	params := url.Values{"fields": {"name"}, "access_token": {c.token}}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(id), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return FallbackName
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := c.do(req, &out); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("Failed to resolve user name")
		return FallbackName
	}
	if out.Name == "" {
		return FallbackName
	}
	return out.Name
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var ge graphError
		if json.Unmarshal(raw, &ge) == nil && ge.Error.Message != "" {
			return fmt.Errorf("graph API error %d (%s): %s", ge.Error.Code, ge.Error.Type, ge.Error.Message)
		}
		return fmt.Errorf("graph API status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
