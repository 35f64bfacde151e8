// Package order contains the transport Order aggregate. Orders participate
// in the fleet core only through the single weight-vs-capacity comparison
// made during allocation.
package order
