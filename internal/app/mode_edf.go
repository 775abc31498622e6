//go:build edf

package app

// DefaultMode is fixed at build time; build without -tags edf for ModePlain.
const DefaultMode = ModeEDF
