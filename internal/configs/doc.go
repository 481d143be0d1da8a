// Package configs loads optional dotenvk defaults from TOML.
//
// A .dotenvk.toml in the working directory takes precedence over
// $XDG_CONFIG_HOME/dotenvk/config.toml; both are optional. Values set
// on the command line always override configuration.
package configs
