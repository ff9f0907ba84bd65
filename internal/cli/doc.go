// Package cli provides command-line interface setup and configuration
// for vocabmt. It builds the cobra command tree, binds flags to viper
// keys and loads configuration files, .env files and the environment.
package cli
