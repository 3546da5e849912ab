// SPDX-License-Identifier: MIT

// Package files wraps the filesystem operations the csv loaders and the
// command-line tools rely on: parent-creating writes, recursive mkdir,
// directory and glob listings (as slices or streams), memory-mapped line
// reading, and JSON/YAML documents validated against a JSON schema.
//
// Locations are written with forward slashes and converted with FilePath.
package files
