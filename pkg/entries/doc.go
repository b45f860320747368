// Package entries derives the public entry namespace from the loader
// catalog. Every loader that exposes the show capability gets one entry,
// named Prefix followed by the loader name, bound to that capability.
//
// The namespace is built once at startup and is read-only afterwards.
// Build is pure; Publish mirrors a built namespace into process-wide
// state exactly once, for consumers that look entries up by convention.
package entries
