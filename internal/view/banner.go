package view

import (
	"context"
	"sync"
	"time"

	"github.com/nexlyn/storefront-backend/pkg/config"
	"github.com/nexlyn/storefront-backend/pkg/metrics"
)

// Slide is one hero banner entry. CategoryID is empty for purely
// promotional slides that should not navigate on click.
type Slide struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	CategoryID string `json:"categoryId,omitempty"`
	Image      string `json:"image,omitempty"`
}

// heroSlides rotates on the home screen.
var heroSlides = []Slide{
	{
		Title:      "Carrier Grade Core Routing",
		Subtitle:   "CCR2216 with dual 100G uplinks, in stock and export ready.",
		CategoryID: "Routing",
		Image:      "https://res.cloudinary.com/demo/image/upload/nexlyn/hero-routing.png",
	},
	{
		Title:      "Wi-Fi 6 Fleet Deployments",
		Subtitle:   "cAP ax ceiling units, centrally managed with CAPsMAN.",
		CategoryID: "Wireless",
		Image:      "https://res.cloudinary.com/demo/image/upload/nexlyn/hero-wireless.png",
	},
	{
		Title:      "100G Aggregation Fabric",
		Subtitle:   "CRS518 top-of-rack switching for high-density racks.",
		CategoryID: "Switching",
		Image:      "https://res.cloudinary.com/demo/image/upload/nexlyn/hero-switching.png",
	},
	{
		Title:      "Fixed Wireless Access",
		Subtitle:   "Chateau 5G ax gateways for last-mile and WAN failover.",
		CategoryID: "5G/LTE",
		Image:      "https://res.cloudinary.com/demo/image/upload/nexlyn/hero-5g.png",
	},
}

// BannerState is a point-in-time snapshot of the rotation.
type BannerState struct {
	Index   int     `json:"index"`
	Exiting bool    `json:"exiting"`
	Slide   Slide   `json:"slide"`
	Slides  []Slide `json:"slides"`
}

// Rotator advances the hero banner on a fixed cadence. The slide marks
// itself exiting for the lead interval before the index moves, so clients
// can animate the transition.
type Rotator struct {
	mu      sync.RWMutex
	index   int
	exiting bool

	slides   []Slide
	interval time.Duration
	exitLead time.Duration
	metrics  *metrics.StorefrontMetrics
}

// NewRotator builds the banner rotator from config timings.
func NewRotator(cfg config.BannerConfig, m *metrics.StorefrontMetrics) *Rotator {
	return &Rotator{
		slides:   heroSlides,
		interval: cfg.Interval,
		exitLead: cfg.ExitLead,
		metrics:  m,
	}
}

// Run rotates slides until the context is cancelled.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		r.setExiting(true)

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.exitLead):
		}

		r.advance()
	}
}

// State returns the current rotation snapshot.
func (r *Rotator) State() BannerState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	slides := make([]Slide, len(r.slides))
	copy(slides, r.slides)
	return BannerState{
		Index:   r.index,
		Exiting: r.exiting,
		Slide:   r.slides[r.index],
		Slides:  slides,
	}
}

func (r *Rotator) setExiting(exiting bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exiting = exiting
}

func (r *Rotator) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.slides)
	r.exiting = false
	r.metrics.IncBannerRotation()
}
