package notify

import (
	"context"
	"net/http"
	"time"
)

// Prober derives connectivity edges by periodically probing a URL with a
// HEAD request, and feeds the result into a Signal.
type Prober struct {
	url      string
	interval time.Duration
	client   *http.Client
	signal   *Signal
}

const probeTimeout = 5 * time.Second

func NewProber(url string, interval time.Duration, signal *Signal) *Prober {
	return &Prober{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: probeTimeout},
		signal:   signal,
	}
}

// Run probes immediately and then on every tick until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	p.signal.Set(p.probe(ctx))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.signal.Set(p.probe(ctx))
		}
	}
}

func (p *Prober) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}
