// Package component contains the Component entity of the production order
// domain. A component is an individually fabricated sub-part of an order with
// its own tri-state status (raw, semi-finished, completed), per-unit price and
// quantity. Components never advance automatically; every status change is an
// explicit operation on a single component.
package component
