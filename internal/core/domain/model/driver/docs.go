// Package driver contains the Driver aggregate root.
package driver
