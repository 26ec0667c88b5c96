// Package share exposes the page-sharing affordance. The platform may offer a
// native share helper, a clipboard, or neither; the capability is detected
// once per share attempt and each arm carries its own success and failure
// handling.
package share

import (
	"context"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/averla/storeview/internal/notify"
)

// Capability is the sharing mechanism available on this platform.
type Capability int

const (
	// Unavailable means neither a share helper nor a clipboard is usable.
	Unavailable Capability = iota
	// Native means a platform share helper was found on PATH.
	Native
	// ClipboardFallback means only the clipboard is usable.
	ClipboardFallback
)

// nativeHelpers are probed in order when no helper is configured explicitly.
// termux-share is the Android share sheet; the others open the URL with the
// platform handler.
var nativeHelpers = []string{"termux-share", "xdg-open", "open"}

// Payload is the content handed to the share mechanism.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// Sharer shares a payload through whatever capability the platform offers.
type Sharer struct {
	sink   notify.Sink
	lg     *zap.Logger
	helper string

	// Test seams. Production values are set by NewSharer.
	lookPath       func(string) (string, error)
	runHelper      func(ctx context.Context, helper string, p Payload) error
	writeClipboard func(string) error
	clipboardOK    func() bool
}

// NewSharer creates a Sharer. helper overrides native-helper detection when
// non-empty; sink receives the outcome toasts.
func NewSharer(sink notify.Sink, lg *zap.Logger, helper string) *Sharer {
	return &Sharer{
		sink:           sink,
		lg:             lg,
		helper:         helper,
		lookPath:       exec.LookPath,
		runHelper:      runNativeHelper,
		writeClipboard: clipboard.WriteAll,
		clipboardOK:    func() bool { return !clipboard.Unsupported },
	}
}

// Detect selects the capability to use for one share attempt. It returns the
// capability and, for Native, the helper binary to invoke.
func (s *Sharer) Detect() (Capability, string) {
	candidates := nativeHelpers
	if s.helper != "" {
		candidates = []string{s.helper}
	}
	for _, h := range candidates {
		if path, err := s.lookPath(h); err == nil {
			return Native, path
		}
	}
	if s.clipboardOK() {
		return ClipboardFallback, ""
	}
	return Unavailable, ""
}

// Share shares the payload using the detected capability.
//
// Outcomes:
//   - Native success emits a confirmation toast; native failure is logged and
//     deliberately stays silent. Only the clipboard arm toasts on failure.
//   - Clipboard success emits a "copied" toast; clipboard failure emits a
//     destructive toast.
//   - Unavailable emits a destructive toast.
func (s *Sharer) Share(ctx context.Context, p Payload) {
	capability, helper := s.Detect()

	switch capability {
	case Native:
		if err := s.runHelper(ctx, helper, p); err != nil {
			s.lg.Warn("Native share failed", zap.String("helper", helper), zap.Error(err))
			return
		}
		s.sink.Notify(notify.Notification{
			Title:       "Shared",
			Description: "Product link shared successfully.",
		})

	case ClipboardFallback:
		if err := s.writeClipboard(p.URL); err != nil {
			s.sink.Notify(notify.Notification{
				Title:       "Share failed",
				Description: "Could not copy the link to the clipboard.",
				Variant:     notify.Destructive,
			})
			return
		}
		s.sink.Notify(notify.Notification{
			Title:       "Link copied",
			Description: "Product link copied to clipboard.",
		})

	default:
		s.sink.Notify(notify.Notification{
			Title:       "Share failed",
			Description: "Sharing is not supported on this platform.",
			Variant:     notify.Destructive,
		})
	}
}

// runNativeHelper invokes the platform share helper with the payload URL.
func runNativeHelper(ctx context.Context, helper string, p Payload) error {
	cmd := exec.CommandContext(ctx, helper, p.URL)
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "run share helper")
	}
	return nil
}
