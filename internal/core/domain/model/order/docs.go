// Package order contains the Order aggregate of the production tracking
// domain. An order owns a non-empty list of components, derives its quantity
// and total price from them, and follows a one-way active -> completed
// lifecycle. Completion cascades the completed status to every component.
package order
