// Package loaders provides the built-in data-source loaders and the
// catalog that turns them into loader descriptors.
//
// Every loader can load a source into a dataset. Loaders marked showable
// also get a show capability, unless configuration disables it:
//
//	[loaders.xml]
//	show = false
//
// Paths ending in .gz are decompressed transparently.
package loaders
