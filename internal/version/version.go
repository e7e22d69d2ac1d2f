// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - 3D perspective view, reflect and shear controls, JSON snapshots
// 0.2.0 - Bright Star Catalogue parsing, constellation file, declutter
// 0.1.0 - Initial release: 2D stereographic sky, pan/zoom/rotate, headless summary
