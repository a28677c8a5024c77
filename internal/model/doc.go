// Package model contains the shared interfaces and data structures
// used by the API client, its HTTP plumbing, and the command line tool.
package model
