// Package util holds the small shared helpers the Gantt packages lean
// on: clamping, error logging, per-app directory resolution, and the
// slug and color derivations used when topics are synthesized.
package util

import "log"

// LogError logs a non-nil error with its context. Background failures
// like autosave go through here instead of interrupting the UI.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Startup only.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
