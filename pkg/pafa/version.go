// Package pafa exposes build-level metadata for the archive tool.
package pafa

// Version is the current release version of the pafa tool.
const Version = "0.1.0"
