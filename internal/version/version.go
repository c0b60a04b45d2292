// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Mouse picking through assembly parts, headless snapshot export
// 0.2.0 - Faceted visibility filter (type/sector/scale), detail asset loader
// 0.1.0 - Initial release: orbit view, camera navigator, built-in catalog
