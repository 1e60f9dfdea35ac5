//go:build tfdebug

package tfmerge

const Debug = true
