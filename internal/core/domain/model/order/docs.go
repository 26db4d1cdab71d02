// Package order implements the order aggregate and its lifecycle state
// machine for the gift marketplace.
//
// The lifecycle has three orthogonal branches:
//   - collection strategy: pickup at the shop counter vs. doorstep delivery
//   - payment release: instant capture vs. escrow pending shop acceptance
//     for make-to-order goods
//   - verification: scanned token vs. manually typed token at collection
//
// The aggregate owns all transition logic; adapters and use cases are thin
// callers and never mutate status directly. Transitions move strictly
// forward, Collected and Rejected are terminal, and every closing
// transition is timestamped exactly once.
package order
