// Package app is the runtime harness: it owns the terminal session, the
// compositor, and the fixed-rate update loop, and drives an Application
// through its lifecycle.
package app
