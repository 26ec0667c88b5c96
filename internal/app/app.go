package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/averla/storeview/internal/catalog"
	"github.com/averla/storeview/internal/notify"
	"github.com/averla/storeview/internal/share"
	"github.com/averla/storeview/internal/view"
	"github.com/averla/storeview/pkg/httpclient"
)

// Run creates all dependencies, mounts the product view, and drives the
// interactive loop until the user quits or the context is cancelled. It is
// the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	return run(ctx, lg, m.TracerProvider(), m.MeterProvider(), cfg, os.Stdin, os.Stdout, os.Stderr)
}

// run is the testable core of Run with injectable streams and providers.
func run(
	ctx context.Context,
	lg *zap.Logger,
	tp trace.TracerProvider,
	mp metric.MeterProvider,
	cfg *Config,
	in io.Reader,
	out, toasts io.Writer,
) error {
	lg.Info("Initializing",
		zap.String("catalog_url", cfg.CatalogURL),
		zap.Int("product_id", cfg.ProductID),
	)

	// Outbound HTTP stack: request IDs, debug logging, otel instrumentation.
	transport := httpclient.Wrap(http.DefaultTransport,
		httpclient.RequestID(),
		httpclient.LogRequests(lg),
		httpclient.Instrument(tp, mp),
	)
	client := catalog.NewClient(cfg.CatalogURL, catalog.WithHTTPClient(&http.Client{
		Transport: transport,
		Timeout:   cfg.HTTPTimeout,
	}))

	var sink notify.Sink = notify.NewTerminal(toasts)
	if cfg.NoInput {
		// Headless runs keep a copy of every toast in the logs.
		sink = notify.Multi{sink, notify.NewLogger(lg)}
	}
	sharer := share.NewSharer(sink, lg, cfg.ShareCommand)

	controller := view.NewController(view.Config{
		ProductID:     cfg.ProductID,
		PageURL:       cfg.PageURL,
		MeterProvider: mp,
	}, client, sink, sharer, lg)
	defer controller.Close()

	// Mount: the loading skeleton shows immediately, the panel is redrawn
	// once the fetch settles.
	controller.Mount(ctx)
	fmt.Fprint(out, controller.Render())

	select {
	case <-controller.Settled():
	case <-ctx.Done():
		return nil
	}
	fmt.Fprint(out, "\n"+controller.Render())

	if cfg.NoInput {
		return nil
	}

	// Command loop plus a teardown watcher: on cancellation the controller
	// closes immediately so an in-flight fetch result is discarded, even if
	// a read is still outstanding.
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		defer cancel()
		return commandLoop(loopCtx, controller, in, out)
	})
	g.Go(func() error {
		<-loopCtx.Done()
		controller.Close()
		return nil
	})
	return g.Wait()
}

// commandLoop dispatches single-letter commands until EOF, quit, or
// cancellation. The blocking read lives in its own goroutine feeding a line
// channel, so cancellation unblocks the loop even while a read is pending;
// the reader goroutine then exits on its next line or EOF.
func commandLoop(ctx context.Context, c *view.Controller, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return errors.Wrap(err, "read command")
					}
				default:
				}
				return nil
			}

			switch strings.TrimSpace(line) {
			case "a":
				c.AddToCart()
			case "w":
				c.ToggleWishlist()
				fmt.Fprint(out, "\n"+c.Render())
			case "s":
				c.ShareProduct(ctx)
			case "q":
				return nil
			case "":
			default:
				fmt.Fprintln(out, "commands: a (add to cart), w (wishlist), s (share), q (quit)")
			}
		}
	}
}
