package ui

import "fmt"

// ANSI256 color codes matching the Ayu palette.
const (
	colorAccent = 74  // blue
	colorMuted  = 245 // medium gray
	colorGood   = 114 // green
	colorWarn   = 215 // orange
	colorBad    = 203 // red
)

var noColor bool

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string {
	return render(colorAccent, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	return render(colorMuted, s)
}

// RenderEmailStatus colors an email status for table output: green for
// verified, orange for catch-all, red for bounced, gray otherwise.
func RenderEmailStatus(status string) string {
	switch status {
	case "verified":
		return render(colorGood, status)
	case "catch_all":
		return render(colorWarn, status)
	case "bounced":
		return render(colorBad, status)
	}
	return render(colorMuted, status)
}

// RenderCount formats a total for the list footer. When the total is not
// known exactly (count endpoint unavailable in cursor mode), it renders
// the loaded count with a "+" suffix rather than a misleading zero.
func RenderCount(loaded, total int, known bool) string {
	if known {
		return fmt.Sprintf("%d of %d", loaded, total)
	}
	return fmt.Sprintf("%d of %d+", loaded, loaded)
}

func render(color int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", color, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
