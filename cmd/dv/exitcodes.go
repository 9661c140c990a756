package main

// Exit codes. Not-found, no-match and duplicate-key outcomes are reported
// and exit with ExitSuccess.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, clipboard or filesystem failure)
	ExitConfigError = 2 // Configuration error (home directory not found, invalid config)
	ExitDataError   = 3 // Data error (corrupt store, unparseable import file)
)
