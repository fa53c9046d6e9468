// Package types holds the public error vocabulary shared by the decompiler
// and its command-line driver.
//
// Every failure surfaced by the decompiler is an *Error carrying one of a
// small, stable set of kinds (I/O, malformed archive, missing block, index
// mismatch, short local script, unprintable tag, bad config). Callers branch
// with errors.Is against the package sentinels:
//
//	if errors.Is(err, types.ErrIndexMismatch) {
//		// the index belongs to another build of the game
//	}
//
// This package has no dependencies beyond the standard library.
package types
