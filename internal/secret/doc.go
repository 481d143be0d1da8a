// Package secret produces cryptographically secure random values for
// env file entries.
//
// Generate draws every character independently and uniformly from a
// character pool using crypto/rand, so output stays unpredictable even
// to an adversary who knows the algorithm and has seen other outputs.
// XKCD delegates to the external xkcdpass word-list generator for
// human-memorable passphrases.
package secret
