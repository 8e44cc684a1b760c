// Package config provides configuration loading, merging, and validation
// facilities for the server and the demo client.
//
// Configuration is assembled from multiple sources; for every field the first
// source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The merged result is validated with go-playground/validator struct tags.
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the demo client.
package config
