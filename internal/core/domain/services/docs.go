// Package services contains stateless domain services that implement
// business policies spanning more than one aggregate: the per-driver
// vehicle cap and the order-to-vehicle allocation rule.
package services
