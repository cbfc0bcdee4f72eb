// Package config loads coloredlogcat settings from a TOML file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/coloredlogcat/config.toml
//  3. If the file doesn't exist, use the built-in defaults
//  4. Fields missing from the file keep their defaults
//
// # TOML Format
//
//	native = false                 # disable wrapping
//	highlight_assignments = false  # color key=value pairs in messages
//	on_unknown_severity = "stop"   # or "skip"
//	adb = "adb"                    # adb binary, tilde expanded
//
//	[columns]                      # 0 hides a column
//	time = 20
//	process = 14
//	label = 20
//	severity = 3
//
//	[known_tags]                   # fixed label colors
//	dalvikvm = "blue"
//	chromium = "magenta"
//
// Color names are black, red, green, yellow, blue, magenta, cyan and white.
// Known tags add to the built-in seeds (dalvikvm, Process, ActivityManager,
// ActivityThread) and override them when the label matches.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors ("parse config: ...") and invalid values.
// Invalid values wrap ErrInvalid: negative column widths, unknown color names,
// and an on_unknown_severity other than "stop" or "skip".
//
// Command line flags are applied by the caller on top of the loaded Config.
package config
