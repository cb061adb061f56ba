// Package engineclient talks to the remote FreeCell engine over HTTP.
package engineclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/internal/selection"
	"github.com/DoyleJ11/freecell-client/internal/types"
	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

const (
	DefaultTimeout     = 10 * time.Second
	SessionHeader      = "X-Client-Session"
	maxErrorBodyLength = 512
)

var ErrUnknownMove = errors.New("move has no engine operation")

// StatusError is returned for any non-2xx engine response.
type StatusError struct {
	Op         protocol.Operation
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP error! status: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP error! status: %d: %s", e.Op, e.StatusCode, e.Body)
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  rate.Limit
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		BaseURL:   "http://localhost:8000",
		Timeout:   DefaultTimeout,
		RateLimit: rate.Inf,
	}
}

type Client struct {
	base      *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	sessionID string
	log       *zap.Logger
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse engine url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("engine url %q needs a scheme and host", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	limit := opts.RateLimit
	if limit == 0 {
		limit = rate.Inf
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	id := uuid.NewString()
	return &Client{
		base:      base,
		http:      hc,
		limiter:   rate.NewLimiter(limit, 1),
		sessionID: id,
		log:       log.With(zap.String("client_session", id)),
	}, nil
}

func (c *Client) SessionID() string { return c.sessionID }

// Start deals a new game. The engine's response body is ignored.
func (c *Client) Start(ctx context.Context) error {
	return c.do(ctx, protocol.OpStart, nil, nil)
}

func (c *Client) State(ctx context.Context) (board.Snapshot, error) {
	var gs types.GameState
	if err := c.do(ctx, protocol.OpGameState, nil, &gs); err != nil {
		return board.Snapshot{}, err
	}
	snap := board.FromWire(gs)
	if len(snap.Malformed) > 0 {
		c.log.Warn("skipped malformed card codes", zap.Strings("codes", snap.Malformed))
	}
	return snap, nil
}

func (c *Client) IsWon(ctx context.Context) (bool, error) {
	var won bool
	err := c.do(ctx, protocol.OpIsGameWon, nil, &won)
	return won, err
}

// Move submits a move. A false result means the engine judged it illegal.
func (c *Client) Move(ctx context.Context, m selection.MoveRequest) (bool, error) {
	op := m.Operation()
	if op == "" {
		return false, fmt.Errorf("%w: %q", ErrUnknownMove, m.Kind)
	}
	var ok bool
	err := c.do(ctx, op, m.Params(), &ok)
	return ok, err
}

// ComputerPlay asks the engine to search sim simulations and apply its best move.
func (c *Client) ComputerPlay(ctx context.Context, sim int) (types.ComputerMove, error) {
	var mv types.ComputerMove
	params := url.Values{}
	params.Set(protocol.ParamSim, strconv.Itoa(sim))
	err := c.do(ctx, protocol.OpComputerPlay, params, &mv)
	return mv, err
}

func (c *Client) Undo(ctx context.Context) (bool, error) {
	var ok bool
	err := c.do(ctx, protocol.OpUndo, nil, &ok)
	return ok, err
}

func (c *Client) do(ctx context.Context, op protocol.Operation, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limiter: %w", op, err)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + op.Path()
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, op.Method(), u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(SessionHeader, c.sessionID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("engine call",
		zap.String("op", string(op)),
		zap.String("query", u.RawQuery),
		zap.Int("status", resp.StatusCode),
		zap.Duration("dur", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
