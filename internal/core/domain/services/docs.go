// Package services provides domain services for business logic that spans
// whole collections of orders rather than a single aggregate root.
//
// The package includes:
//   - WalletLedger: derives a shop's pending and available balances from its
//     order history
//
// Domain services here are stateless and pure; all required state arrives as
// arguments.
package services
