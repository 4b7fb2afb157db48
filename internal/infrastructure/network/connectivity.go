package network

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Probe reports connectivity by periodically sending a HEAD request to a URL.
// Any HTTP response counts as online; transport errors count as offline.
type Probe struct {
	url      string
	interval time.Duration
	client   *http.Client

	online  atomic.Bool
	changes chan bool
	once    sync.Once
}

func NewProbe(url string, interval time.Duration) *Probe {
	p := &Probe{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 5 * time.Second},
		changes:  make(chan bool, 1),
	}
	p.online.Store(true)
	return p
}

func (p *Probe) Online() bool { return p.online.Load() }

func (p *Probe) Changes() <-chan bool { return p.changes }

// Run polls until ctx is done.
func (p *Probe) Run(ctx context.Context) {
	p.once.Do(func() {
		p.check(ctx)
		t := time.NewTicker(p.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.check(ctx)
			}
		}
	})
}

func (p *Probe) check(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.set(false)
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.set(false)
		return
	}
	resp.Body.Close()
	p.set(true)
}

func (p *Probe) set(online bool) {
	if p.online.Swap(online) == online {
		return
	}
	log.Printf("[sync][network] connectivity changed online=%v", online)
	// keep only the latest state if nobody has read the previous one
	select {
	case <-p.changes:
	default:
	}
	select {
	case p.changes <- online:
	default:
	}
}

// Static is a fixed connectivity signal.
type Static struct {
	online bool
}

func NewStatic(online bool) *Static { return &Static{online: online} }

func (s *Static) Online() bool { return s.online }

func (s *Static) Changes() <-chan bool { return nil }
