//go:build dboracle

package database

// DefaultVendor is the database family compiled into this binary.
const DefaultVendor = VendorOracle
