// Package config provides configuration loading, merging, and validation
// for the Fraud Shield server and terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The JSON file path itself comes from env or flags; the file is still merged
// beneath them.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
