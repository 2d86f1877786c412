// Package ioutils provides the file system helpers rover writes datasets
// with.
//
// This package contains functions for:
//   - Durable file writes (create or truncate, flush, fsync)
//   - Resolving a dataset filename against an output directory
//   - Directory creation
//
// # File Operations
//
//	// Write a fetched body to disk
//	err := ioutils.WriteFile(ctx, ioutils.Resolve(outDir, "iris.csv"), body)
//
//	// Ensure the output directory exists
//	err := ioutils.EnsureDir("/data/sets")
//
// Filenames from the manifest are used as given; nothing here sanitizes
// them or guards against path traversal.
package ioutils
