// Package errors defines sentinel error values shared across dotenvk.
//
// Call sites wrap these with fmt.Errorf("...: %w", err) to add context
// while keeping errors.Is checks working at the CLI boundary.
package errors
