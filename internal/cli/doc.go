// Package cli turns rtegraph's command line into a validated app.Config.
// Usage problems surface as *ExitError with code 2; help exits cleanly.
package cli
