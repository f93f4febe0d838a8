// Package billing provides domain models for subscription billing state.
//
// This package implements the billing bounded context, which is responsible for:
//   - Representing the subscription snapshot mirrored from the payment provider
//   - Mapping provider subscription statuses onto the internal status enum
//   - Expressing billing updates as field-level patches so that webhook
//     handlers never overwrite fields an event did not carry
//
// Key Value Objects:
//   - Record: The billing snapshot embedded in an athlete profile
//   - Patch: A partial, merge-only update to a Record
//   - Status: Enumeration of internal subscription statuses
//
// The billing domain integrates with:
//   - Identity domain: The Record lives on the Athlete aggregate
//   - Content domain: Premium gating reads Record.IsPremium
package billing
