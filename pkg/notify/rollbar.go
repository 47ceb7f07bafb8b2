// Package notify forwards store persistence failures to Rollbar.
package notify

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/rollbar/rollbar-go"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

const defaultCooldown = time.Minute

// sender is the subset of *rollbar.Client used here.
type sender interface {
	ErrorWithExtrasAndContext(ctx context.Context, level string, err error, extras map[string]interface{})
}

// Options configures the Rollbar reporter.
type Options struct {
	Token       string
	Environment string
	CodeVersion string
	// Cooldown suppresses repeats of the same failure code; zero means one minute.
	Cooldown time.Duration
}

// PersistReporter reports failed saves. Every failed mutation triggers one,
// so identical failures are throttled.
type PersistReporter struct {
	client   *rollbar.Client
	send     sender
	logger   *zap.Logger
	cooldown time.Duration
	clock    func() time.Time

	mu       sync.Mutex
	lastCode string
	lastSent time.Time
}

// NewRollbar returns a reporter, or nil when no token is configured. A nil
// reporter is safe to use.
func NewRollbar(opts Options, logger *zap.Logger) *PersistReporter {
	if opts.Token == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	host, _ := os.Hostname()
	client := rollbar.New(opts.Token, opts.Environment, opts.CodeVersion, host, "")
	r := newReporter(client, opts.Cooldown, logger, time.Now)
	r.client = client
	return r
}

func newReporter(send sender, cooldown time.Duration, logger *zap.Logger, clock func() time.Time) *PersistReporter {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &PersistReporter{send: send, logger: logger, cooldown: cooldown, clock: clock}
}

// PersistFailed has the signature of store.PersistErrorHandler.
func (r *PersistReporter) PersistFailed(ctx context.Context, err error) {
	if r == nil || err == nil {
		return
	}
	code := appErrors.ErrPersistence.Code
	var appErr *appErrors.Error
	if errors.As(errors.Unwrap(err), &appErr) {
		code = appErr.Code
	}

	r.mu.Lock()
	now := r.clock()
	if code == r.lastCode && now.Sub(r.lastSent) < r.cooldown {
		r.mu.Unlock()
		return
	}
	r.lastCode = code
	r.lastSent = now
	r.mu.Unlock()

	level := rollbar.ERR
	if errors.Is(err, appErrors.ErrQuotaExceeded) {
		level = rollbar.CRIT
	}
	r.send.ErrorWithExtrasAndContext(ctx, level, err, map[string]interface{}{
		"cause": code,
	})
	r.logger.Debug("persistence failure reported", zap.String("cause", code), zap.String("level", level))
}

// Close flushes queued reports.
func (r *PersistReporter) Close() {
	if r == nil || r.client == nil {
		return
	}
	r.client.Close()
}
