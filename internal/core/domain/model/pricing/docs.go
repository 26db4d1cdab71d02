// Package pricing implements the fee calculator: a pure computation of
// subtotal, platform fee, zone-based delivery fee, processing fee and total
// for a cart. It is a leaf package with no dependency on the order
// lifecycle, so persisted totals can be re-derived at any later time and a
// receipt regenerated exactly.
//
// Fee structure:
//   - subtotal: sum of unit price x quantity over all items
//   - platform fee: subtotal x platform rate
//   - delivery fee: zone tier lookup over the courier distance; zero for pickup
//   - processing fee: computed last, over subtotal + platform + delivery (fees compound)
//
// All fee boundaries round half-up to two decimal places.
package pricing
