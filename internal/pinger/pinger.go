package pinger

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"yitio/config"

	"go.uber.org/zap"
)

// pingTimeout bounds every liveness request.
const pingTimeout = 10 * time.Second

// Pinger keeps the hosting platform from idling the service by issuing a
// GET against its own health endpoint on a fixed cadence. Failed pings are
// logged and never interrupt the schedule.
type Pinger struct {
	logger   *zap.Logger
	url      string
	interval time.Duration
	enabled  bool
	client   *http.Client

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New builds a pinger for the given target URL and cadence.
func New(logger *zap.Logger, url string, interval time.Duration) *Pinger {
	return &Pinger{
		logger:   logger,
		url:      url,
		interval: interval,
		enabled:  url != "",
		client:   &http.Client{Timeout: pingTimeout},
	}
}

// NewPinger derives the ping target from the service's own public base URL.
func NewPinger(conf *config.Config, logger *zap.Logger) *Pinger {
	url := ""
	if conf.Server.BaseURL != "" {
		url = conf.Server.BaseURL + "/health"
	}

	p := New(logger, url, time.Duration(conf.Pinger.IntervalMinutes)*time.Minute)
	if conf.Pinger.Disabled {
		p.enabled = false
	}
	return p
}

// Start launches the background loop: one immediate ping, then one every
// interval. Calling Start while already running logs and does nothing.
func (p *Pinger) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		p.logger.Info("pinger disabled")
		return
	}
	if p.running {
		p.logger.Warn("pinger already running")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.running = true
	p.cancel = cancel
	p.done = make(chan struct{})

	p.logger.Info("starting pinger",
		zap.String("url", p.url),
		zap.Duration("interval", p.interval),
	)

	go p.loop(ctx, p.done)
}

func (p *Pinger) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.Ping(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Ping(ctx)
		}
	}
}

// Stop cancels the loop and waits for it to drain. Stopping a pinger that
// never started is a no-op.
func (p *Pinger) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done

	p.logger.Info("pinger stopped")
}

// Ping issues a single liveness request and returns the response status.
// Network failures and timeouts return 0; they are logged, never raised.
func (p *Pinger) Ping(ctx context.Context) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Error("building ping request", zap.Error(err))
		return 0
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("ping failed", zap.String("url", p.url), zap.Error(err))
		return 0
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	p.logger.Info("ping", zap.String("url", p.url), zap.Int("status", resp.StatusCode))
	return resp.StatusCode
}

// Active reports whether the background loop is running.
func (p *Pinger) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
