//go:build !edf

package app

// DefaultMode is fixed at build time; build with -tags edf for ModeEDF.
const DefaultMode = ModePlain
