package notify

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMulti_FansOut(t *testing.T) {
	a, b := &Memory{}, &Memory{}
	sink := Multi{a, b}

	sink.Notify(Notification{Title: "hello"})

	require.Len(t, a.All(), 1)
	require.Len(t, b.All(), 1)
	assert.Equal(t, "hello", a.All()[0].Title)
}

func TestTerminal_RendersToast(t *testing.T) {
	color.NoColor = true
	var out strings.Builder
	sink := NewTerminal(&out)

	sink.Notify(Notification{Title: "Added to cart", Description: "Widget has been added to your cart."})

	assert.Equal(t, "✔ Added to cart: Widget has been added to your cart.\n", out.String())
}

func TestTerminal_DestructiveGlyph(t *testing.T) {
	color.NoColor = true
	var out strings.Builder
	sink := NewTerminal(&out)

	sink.Notify(Notification{Title: "Error", Description: "request failed with status 404", Variant: Destructive})

	assert.True(t, strings.HasPrefix(out.String(), "✖ "))
	assert.Contains(t, out.String(), "404")
}

func TestLogger_VariantSelectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewLogger(zap.New(core))

	sink.Notify(Notification{Title: "Added to cart", Description: "Widget"})
	sink.Notify(Notification{Title: "Error", Variant: Destructive})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Added to cart", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestTerminal_NoDescription(t *testing.T) {
	color.NoColor = true
	var out strings.Builder
	sink := NewTerminal(&out)

	sink.Notify(Notification{Title: "Shared"})

	assert.Equal(t, "✔ Shared\n", out.String())
}
