// Package booking provides domain entities and business logic for consignment
// management in the freight system. It implements the Booking aggregate root
// with lifecycle management, the LR document number value object, and the
// receipt condition vocabulary.
//
// The package includes:
//   - Booking: The aggregate root managing consignment identity, parties,
//     articles, charges, and lifecycle
//   - Status: A state machine enforcing the booked -> loading -> in_transit
//     -> unloaded -> delivered workflow, with cancellation before departure
//   - LRNumber: The ORIGIN-DEST-YEAR-SEQ document number value object
//   - Condition: The tagged good/damaged/missing receipt condition
//   - ProofOfDelivery: The POD evidence block merged in at unloading
//
// Key business rules:
//   - Bookings carry a valid unique identifier, an allocated LR number,
//     distinct origin/destination branches, and at least one article line
//   - Status transitions are monotonic forward-only; cancellation is only
//     reachable from booked or loading and is a transition, not a deletion
//   - A booking rides at most one active manifest at a time
//   - Transition payloads (POD block, missing marker) are merge-patches
//     that never overwrite unrelated fields
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package booking
