// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, split history, configuration and debug introspection.
//
// Provides concurrent-safe state handling primitives including:
//   - Prometheus-backed split observers mirrored into a metrics registry
//   - A bounded history of recent commits
//   - Snapshot config reads with reload listeners
//   - Debug probe registration and state export
package control
