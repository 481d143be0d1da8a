// Package logger provides leveled logging for dotenvk CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only user-facing warnings and errors are shown.
//
// Commands create a logger in their PersistentPreRun and use it for
// breadcrumbs; ErrorfAndReturn both logs and produces the error that
// terminates the command.
package logger
