//go:build !tfdebug

package tfmerge

// Debug enables view bounds validation and transform range checks.
// Build with -tags tfdebug to turn it on.
const Debug = false
