// Package config provides user configuration for the urlmap tool.
//
// The configuration file is YAML and names extra map files to merge after the
// built-in table, plus default logging and output settings.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/urlmap/config.yaml or $HOME/.config/urlmap/config.yaml
//   - macOS: $HOME/.config/urlmap/config.yaml
//   - Windows: %LOCALAPPDATA%\urlmap\config.yaml
//
// A missing file is not an error; defaults are used instead.
//
// # Example
//
//	version: 1
//	maps:
//	  - gtk.yaml                # relative to the config file
//	  - /usr/share/urlmap/extra.json
//	log_level: warn
//	output: auto
package config
