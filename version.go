// Package structkit holds metadata shared by the CLI.
package structkit

// Version is the current structkit release.
const Version = "0.4.0"
