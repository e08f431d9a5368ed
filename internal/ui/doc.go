// Package ui renders the FinPulse sentiment dashboard with Bubble Tea.
//
// Composition, top-down:
//   - AppModel: the shell. Owns the theme, the keybind handler and overlays,
//     and mounts the navbar above the dashboard body.
//   - Navbar: static branding with a decorative status indicator.
//   - DashboardView: polls the summary endpoint, falls back to a constant on
//     failure and renders metric cards and distribution bars.
//   - Overlay: modal views (the about box) dismissed with esc.
package ui
