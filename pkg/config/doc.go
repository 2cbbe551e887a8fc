// Package config loads st7735-setup's layered configuration.
//
// Layers, lowest priority first:
//
//  1. embedded/defaults.toml, which reproduces the fixed constants of the
//     original setup procedure
//  2. the user file, $XDG_CONFIG_HOME/st7735-setup/config.toml or --config
//  3. ST7735_SETUP_* environment variables
//  4. command line overrides
//
// Environment keys use the first underscore after the prefix as the section
// separator: ST7735_SETUP_TOOLS_PIP_ARGS sets tools.pip_args.
package config
