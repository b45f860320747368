// Package core wires dview together at startup: configuration, the
// instance store, the loader catalog and the entry namespace derived
// from it.
package core
