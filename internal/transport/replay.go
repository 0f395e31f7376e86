package transport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"finnhub/pkg/core"
)

// Fixture is the persisted form of one recorded response, keyed by the
// resolved URL with the credential scrubbed.
type Fixture struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// Replay is a transport that serves recorded fixtures instead of calling the
// network. When constructed with a recorder, a miss falls through to the live
// transport and the response is persisted (with the credential scrubbed) for
// later replays.
type Replay struct {
	dir    string
	token  string
	live   core.Transport
	logger zerolog.Logger
}

// ReplayOption is a functional option for configuring the replay transport.
type ReplayOption func(*Replay)

// WithRecorder sets the live transport used to record missing fixtures.
func WithRecorder(live core.Transport) ReplayOption {
	return func(r *Replay) {
		r.live = live
	}
}

// WithReplayLogger sets the logger for the replay transport.
func WithReplayLogger(logger zerolog.Logger) ReplayOption {
	return func(r *Replay) {
		r.logger = logger
	}
}

// NewReplay creates a replay transport serving fixtures from dir. The token
// is removed from every URL before it is used as a fixture key or persisted.
func NewReplay(dir, token string, opts ...ReplayOption) *Replay {
	r := &Replay{
		dir:    dir,
		token:  token,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get serves the fixture recorded for the URL, recording it first when a
// recorder is configured and no fixture exists yet.
func (r *Replay) Get(ctx context.Context, url string) (*core.Response, error) {
	scrubbed := r.Scrub(url)
	path := filepath.Join(r.dir, FixtureName(scrubbed))

	data, err := os.ReadFile(path)
	if err == nil {
		var fx Fixture
		if err := sonic.Unmarshal(data, &fx); err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", path, err)
		}
		r.logger.Debug().Str("url", scrubbed).Str("fixture", path).Msg("replaying fixture")
		return &core.Response{
			StatusCode: fx.StatusCode,
			Body:       []byte(fx.Body),
		}, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	if r.live == nil {
		return nil, fmt.Errorf("%w: %s", core.ErrFixtureMissing, scrubbed)
	}

	resp, err := r.live.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := r.persist(path, scrubbed, resp); err != nil {
		return nil, err
	}
	r.logger.Debug().Str("url", scrubbed).Str("fixture", path).Msg("recorded fixture")
	return resp, nil
}

func (r *Replay) persist(path, scrubbedURL string, resp *core.Response) error {
	fx := Fixture{
		URL:        scrubbedURL,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
	data, err := sonic.Marshal(fx)
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create fixture dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// Scrub removes the credential from a resolved URL so it never reaches a
// persisted fixture.
func (r *Replay) Scrub(url string) string {
	if r.token == "" {
		return url
	}
	return strings.ReplaceAll(url, r.token, "REDACTED")
}

// FixtureName maps a scrubbed URL to a filesystem-safe fixture filename.
func FixtureName(url string) string {
	name := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		default:
			return '-'
		}
	}, url)
	return name + ".json"
}
