// Package types defines the core data structures shared across dview:
// loader descriptors and their capabilities, data sources, tabular
// datasets and the instances created when a dataset is shown.
package types
