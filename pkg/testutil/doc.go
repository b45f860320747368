// Package testutil provides small helpers shared by dview tests.
//
// Fixture files are written with WriteFixture and WriteGzipFixture.
// NewTestEnvironment redirects the XDG config and state directories so
// user config lookup and the log file stay inside the test's temp dir.
package testutil
