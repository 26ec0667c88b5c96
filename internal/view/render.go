package view

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/averla/storeview/internal/domain/product"
)

var (
	titleStyle    = color.New(color.Bold)
	categoryStyle = color.New(color.Faint)
	priceStyle    = color.New(color.Bold, color.FgGreen)
	strikeStyle   = color.New(color.Faint, color.CrossedOut)
	errorStyle    = color.New(color.Bold, color.FgRed)
	skeletonStyle = color.New(color.Faint)
	hintStyle     = color.New(color.Faint)
)

// Render returns exactly one of the three panels: loading takes precedence,
// then error, then the product. The all-empty combination is unreachable
// through the state machine but still renders nothing rather than panicking.
func (c *Controller) Render() string {
	c.mu.Lock()
	loading, errMsg, p, wishlisted := c.loading, c.errMsg, c.product, c.wishlisted
	c.mu.Unlock()

	switch {
	case loading:
		return renderSkeleton()
	case errMsg != "":
		return renderError(errMsg)
	case p != nil:
		return renderProduct(*p, wishlisted)
	default:
		return ""
	}
}

// renderSkeleton draws placeholder bars shaped roughly like the product panel.
func renderSkeleton() string {
	var b strings.Builder
	b.WriteString(skeletonStyle.Sprint(strings.Repeat("░", 38)) + "\n")
	b.WriteString(skeletonStyle.Sprint(strings.Repeat("░", 14)) + "\n\n")
	b.WriteString(skeletonStyle.Sprint(strings.Repeat("░", 10)) + "\n\n")
	for range 3 {
		b.WriteString(skeletonStyle.Sprint(strings.Repeat("░", 48)) + "\n")
	}
	return b.String()
}

func renderError(msg string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Sprint("Something went wrong") + "\n")
	b.WriteString(msg + "\n")
	return b.String()
}

func renderProduct(p product.Product, wishlisted bool) string {
	glyph := "♡"
	if wishlisted {
		glyph = "♥"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Sprint(p.Title) + "  " + glyph + "\n")
	b.WriteString(categoryStyle.Sprint(strings.ToUpper(p.Category)) + "\n\n")

	b.WriteString(fmt.Sprintf("★ %s (%d reviews)\n\n", p.Rating.Rate.String(), p.Rating.Count))

	b.WriteString(priceStyle.Sprintf("$%s", p.Price.StringFixed(2)))
	b.WriteString("  " + strikeStyle.Sprintf("$%s", p.ListPrice().StringFixed(2)) + "\n\n")

	b.WriteString(p.Description + "\n\n")
	b.WriteString(categoryStyle.Sprint(p.Image) + "\n\n")
	b.WriteString(hintStyle.Sprint("[a] add to cart   [w] wishlist   [s] share   [q] quit") + "\n")
	return b.String()
}
