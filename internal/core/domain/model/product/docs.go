// Package product contains the catalog entry domain model.
//
// A catalog entry describes a product's identity, price, and physical footprint.
// Two variants exist with different storage cost and eligibility rules:
//   - Perishable: carries an expiry date and a required storage temperature,
//     with a freshness status derived from the current time.
//   - Durable: carries a material type and a fragility flag.
//
// Both variants satisfy the Product interface, which is the capability set the
// rest of the system dispatches on. Entries are created by callers, registered
// into exactly one inventory registry, and removed explicitly.
package product
