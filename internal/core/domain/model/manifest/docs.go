// Package manifest provides domain entities and business logic for dispatch
// trips (OGPLs) in the freight system. A manifest groups a batch of bookings
// onto one vehicle for transport between two branches.
//
// The package includes:
//   - Manifest: The aggregate root managing trip identity, vehicle, driver,
//     route, and lifecycle, and owning the trip's loading records
//   - LoadingRecord: The immutable link between the manifest and one booking
//   - Status: A state machine enforcing the created -> in_transit ->
//     unloaded -> completed workflow
//
// Key business rules:
//   - Bookings are attached only while the manifest is in created status,
//     at most once each
//   - A manifest departs only with at least one booking on board
//   - The unloaded transition belongs to the unloading workflow and happens
//     only after an unloading session exists for the trip
package manifest
