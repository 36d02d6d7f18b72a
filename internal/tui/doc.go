// Package tui implements the TraduzAi terminal user interface.
//
// The application is built with Charmbracelet's BubbleTea, Lipgloss and
// Bubbles libraries.
//
// Component architecture:
//
//	model.go   — root model, navigation, message routing
//	theme.go   — Theme: every color and style, built once from config
//	splash.go  — launch screen with a one-shot, cancellable dismissal
//	tabs.go    — bottom tab bar and placeholder screens
//	home.go    — translation screen with two placeholder text inputs
//	footer.go  — status line + keyboard hints
//	helpers.go — hit testing, truncation, index arithmetic
package tui
