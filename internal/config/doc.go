// Package config provides configuration loading, merging, validation, and
// run-state persistence facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill fields the earlier ones left empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON configuration artifact
//  4. Built-in defaults
//
// The JSON artifact doubles as the durable run state: it carries the
// watermark (state.lastDate) that selects "new" statements, and is rewritten
// in place at the end of a successful run via [CommitWatermark] with every
// other field preserved.
//
// The main entry point is [GetConfig].
package config
