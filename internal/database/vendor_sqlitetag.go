//go:build dbsqlite && !dboracle && !dbpostgres

package database

// DefaultVendor is the database family compiled into this binary.
const DefaultVendor = VendorSQLite
