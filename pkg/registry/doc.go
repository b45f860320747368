// Package registry provides a generic, thread-safe registry for named
// items. The loader catalog and the instance store are both built on it.
// A registry can be frozen once populated, after which it is read-only.
package registry
