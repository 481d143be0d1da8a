// Package utils provides shared terminal and I/O helpers.
//
// # Terminal Utilities
//
//   - ReadSecret: prompts for a value without echoing input
//   - IsTerminal: checks whether stdin is a terminal
package utils
