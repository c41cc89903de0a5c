// Package cli provides command-line interface setup and configuration
// for the polyglot application. It handles flag parsing, command
// creation, interactive prompting for missing arguments and
// configuration management using cobra and viper.
package cli
