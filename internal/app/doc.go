// Package app wires a scenario, the engine and a view into one run, or
// starts the HTTP server, independent of how it was configured.
package app
