// Package config holds the editor settings.
//
// The editor reads no configuration files and no environment variables.
// Settings are compiled-in defaults that callers and tests override with
// functional options:
//
//	cfg := config.New(
//	    config.WithTheme("monokai"),
//	    config.WithLineNumbers(true),
//	)
//
// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the configuration.
package config
