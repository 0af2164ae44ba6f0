//go:build !dboracle && !dbpostgres && !dbsqlite

package database

// DefaultVendor is the database family compiled into this binary.
const DefaultVendor = VendorMySQL
