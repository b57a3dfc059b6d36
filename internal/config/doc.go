// Package config builds the server's StructuredConfig.
//
// Values come from environment variables, command-line flags and an optional
// JSON file, merged in that order with later non-zero fields winning. Defaults
// fill what is still empty and the result is validated once at startup.
// Call [GetStructuredConfig].
package config
