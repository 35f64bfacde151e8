// Package vehicle contains the Vehicle aggregate root, the sole owner of
// the driver/vehicle binding.
package vehicle
