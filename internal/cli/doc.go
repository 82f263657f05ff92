// Package cli provides the manifestreport command tree.
//
// Every command loads configuration (defaults, JSON file, environment,
// then flags), builds a logger tagged with a fresh run_id and opens the
// app. Commands:
//   - list [--page N]: paged manifest list, newest first
//   - show <version>: change summary of one version
//   - definition <version> <definition>: classified objects of one table
//   - latest: change summary of the newest version
//   - serve: JSON API
package cli
