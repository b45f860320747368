// Package config loads dview configuration with koanf.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/dview/config.toml (or config.yaml)
//  3. a project file, .dview.toml in the working directory
//  4. DVIEW_* environment variables, with "__" separating levels:
//     DVIEW_PREVIEW__ROWS=20, DVIEW_LOADERS__XML__SHOW=false
package config
