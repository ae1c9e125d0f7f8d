package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"weekplan/internal/calendar"
)

// Color definitions for consistent styling across the UI.
var (
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)

	// Terminal approximations of the category palette.
	categoryStyles = map[calendar.Category]*color.Color{
		calendar.CategoryExercise: color.New(color.FgGreen),
		calendar.CategoryEating:   color.New(color.FgYellow),
		calendar.CategoryWork:     color.New(color.FgBlue),
		calendar.CategoryRelax:    color.New(color.FgMagenta),
		calendar.CategoryFamily:   color.New(color.FgHiMagenta),
		calendar.CategorySocial:   color.New(color.FgHiYellow),
		calendar.CategoryOther:    color.New(color.FgWhite),
	}
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatCategory colors text with the category's terminal style.
func formatCategory(c calendar.Category, s string) string {
	if style, ok := categoryStyles[c]; ok {
		return style.Sprint(s)
	}
	return s
}
