// Package internal contains the infrastructure behind the diary widgets:
// logging, theming and theme hot reload, localisation, icon rasterisation,
// caching, and raw touchscreen input. The SDL host layer lives in sdlkit.
// Types and functions in this package are not part of the public API.
package internal
