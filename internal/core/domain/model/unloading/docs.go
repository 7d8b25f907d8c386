// Package unloading provides domain entities for receiving a manifest at its
// destination branch.
//
// The package includes:
//   - Session: The immutable record of one unloading call with its aggregate
//     good/damaged/missing tallies
//   - Saga: The durable step cursor for the non-atomic unloading workflow,
//     carrying the full per-booking condition payload for crash resume
//
// The workflow itself lives in the application layer; this package only
// captures its durable state and the rules for moving the cursor forward.
package unloading
