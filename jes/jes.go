// Package jes is a flat convenience layer in the naming style of the
// classroom media-computation API. Every function is a thin delegation to
// the core packages; no logic lives here beyond argument defaults.
package jes
