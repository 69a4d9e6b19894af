// Package ui holds the shared terminal look: the dashboard palette, color
// mode control for --no-color, status symbols, and the table and sparkline
// helpers used by non-interactive commands.
//
// # Color Modes
//
//	auto    - Detected profile, monochrome when output is not a terminal
//	always  - Force true color
//	never   - Monochrome
//
// Call ApplyColorMode once at startup, before anything renders.
package ui
