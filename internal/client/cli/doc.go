// Package cli provides the interactive Hoopa Connect terminal client.
//
// It wires configuration, the local session store, the gRPC backend and an
// interactive REPL. On start the stored session is restored, the user's role
// is looked up and the matching landing screen is shown: a welcome screen
// for guests, the home screen for members and a dashboard for chairman and
// enrollment staff.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
