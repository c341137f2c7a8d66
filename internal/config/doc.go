// Package config provides configuration loading, merging, and validation
// for the dashboard server and its terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// After merging, two named states are derived: [AdminAccess] (is the admin
// password configured) and [SecretSource] (was the session secret supplied
// or generated for this run).
package config
