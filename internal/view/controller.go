// Package view implements the product-detail view: a small state machine
// that issues one fetch per mount and renders exactly one of three panels
// (loading, error, product) at any time.
package view

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"

	"github.com/averla/storeview/internal/domain/product"
	"github.com/averla/storeview/internal/notify"
	"github.com/averla/storeview/internal/share"
)

// Sharer shares a payload derived from the displayed product.
type Sharer interface {
	Share(ctx context.Context, p share.Payload)
}

// Config holds non-dependency configuration for the Controller.
type Config struct {
	// ProductID is the fixed catalog record this view displays.
	ProductID int
	// PageURL is the location shared by the share affordance.
	PageURL string
	// MeterProvider supplies the fetch-outcome counter. Optional.
	MeterProvider metric.MeterProvider
}

// Controller owns the view state for one mounted product-detail view.
//
// The state machine is Loading -> Success or Loading -> Error; both are
// terminal within a single mount. User events only flip the wishlist flag
// and emit toasts, they never re-fetch or touch the product record.
type Controller struct {
	cfg     Config
	fetcher product.Fetcher
	sink    notify.Sink
	sharer  Sharer
	lg      *zap.Logger

	fetches metric.Int64Counter

	mu         sync.Mutex
	loading    bool
	errMsg     string
	product    *product.Product
	wishlisted bool
	closed     bool

	cancel  context.CancelFunc
	settled chan struct{}
}

// NewController constructs a Controller with the required dependencies.
func NewController(
	cfg Config,
	fetcher product.Fetcher,
	sink notify.Sink,
	sharer Sharer,
	lg *zap.Logger,
) *Controller {
	mp := cfg.MeterProvider
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	fetches, err := mp.Meter("storeview").Int64Counter("storeview.fetch")
	if err != nil {
		lg.Warn("Create fetch counter", zap.Error(err))
		fetches, _ = noop.NewMeterProvider().Meter("storeview").Int64Counter("storeview.fetch")
	}

	return &Controller{
		cfg:     cfg,
		fetcher: fetcher,
		sink:    sink,
		sharer:  sharer,
		lg:      lg,
		fetches: fetches,
		settled: make(chan struct{}),
	}
}

// Mount starts the single fetch for this view. It must be called at most
// once; the view renders the loading panel until the fetch settles.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	fetchCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	go func() {
		defer close(c.settled)
		p, err := c.fetcher.Fetch(fetchCtx, c.cfg.ProductID)
		c.apply(p, err)
	}()
}

// apply commits the fetch result to view state. A result arriving after
// Close is discarded so a torn-down view is never mutated.
func (c *Controller) apply(p *product.Product, err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.lg.Debug("Fetch settled after close, discarding result")
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
		c.errMsg = err.Error()
	} else {
		c.product = p
		c.errMsg = ""
	}
	c.loading = false
	c.mu.Unlock()

	c.fetches.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome)))

	if err != nil {
		c.lg.Error("Fetch product", zap.Int("id", c.cfg.ProductID), zap.Error(err))
		c.sink.Notify(notify.Notification{
			Title:       "Error",
			Description: err.Error(),
			Variant:     notify.Destructive,
		})
	}
}

// Settled is closed once the mount fetch has finished, whether its result
// was applied or discarded.
func (c *Controller) Settled() <-chan struct{} {
	return c.settled
}

// Close tears the view down: the in-flight fetch is cancelled and any late
// result is discarded rather than applied.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// AddToCart emits the add-to-cart toast. It is a pure side effect: no cart
// entity exists here and no view state changes.
func (c *Controller) AddToCart() {
	c.mu.Lock()
	p := c.product
	c.mu.Unlock()
	if p == nil {
		return
	}

	c.sink.Notify(notify.Notification{
		Title:       "Added to cart",
		Description: fmt.Sprintf("%s has been added to your cart.", p.Title),
	})
}

// ToggleWishlist flips the wishlist flag and emits a toast reflecting the
// resulting state. Two toggles restore the original state.
func (c *Controller) ToggleWishlist() {
	c.mu.Lock()
	p := c.product
	if p == nil {
		c.mu.Unlock()
		return
	}
	c.wishlisted = !c.wishlisted
	wishlisted := c.wishlisted
	c.mu.Unlock()

	if wishlisted {
		c.sink.Notify(notify.Notification{
			Title:       "Added to wishlist",
			Description: fmt.Sprintf("%s has been added to your wishlist.", p.Title),
		})
		return
	}
	c.sink.Notify(notify.Notification{
		Title:       "Removed from wishlist",
		Description: fmt.Sprintf("%s has been removed from your wishlist.", p.Title),
	})
}

// ShareProduct shares the current product and page location through the
// platform capability.
func (c *Controller) ShareProduct(ctx context.Context) {
	c.mu.Lock()
	p := c.product
	c.mu.Unlock()
	if p == nil {
		return
	}

	c.sharer.Share(ctx, share.Payload{
		Title: p.Title,
		Text:  excerpt(p.Description, 120),
		URL:   c.cfg.PageURL,
	})
}

// Wishlisted reports the current wishlist flag.
func (c *Controller) Wishlisted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wishlisted
}

// excerpt truncates s to at most n runes, appending an ellipsis when cut.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
