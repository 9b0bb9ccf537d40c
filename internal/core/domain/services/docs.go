// Package services provides domain services of the production tracking system.
// It implements business logic that spans a whole component collection and
// doesn't naturally belong to a single entity.
//
// The package includes:
//   - StatusAggregator: derives the order-level display status and the
//     completion readiness from a set of component states
//
// The display status is never persisted as ground truth; it is always
// recomputed from the components on read.
package services
