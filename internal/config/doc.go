// Package config provides configuration loading, merging, and validation
// for the go-robinhood command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; a later source only fills fields that are
// still zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file (-c / -config / CONFIG)
//
// The main entry point is [GetClientConfig].
package config
