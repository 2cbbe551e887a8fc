// Package paths provides centralized path handling for st7735-setup.
//
// The projects root and checkout directory are user-configurable (see
// pkg/config). The locations of the tool's own config file, run history
// and log file follow the XDG Base Directory specification and can be
// redirected with the ST7735_SETUP_CONFIG_DIR environment variable or the
// standard XDG_* variables.
package paths
