// Package maintenance contains the MaintenanceRecord aggregate root and its
// Status state machine.
package maintenance
