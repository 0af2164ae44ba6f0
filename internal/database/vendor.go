package database

import "strings"

// Vendor selects a database family.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorMySQL
	VendorPostgreSQL
	VendorOracle
	VendorSQLite
)

func (v Vendor) String() string {
	switch v {
	case VendorMySQL:
		return "MySQL"
	case VendorPostgreSQL:
		return "PostgreSQL"
	case VendorOracle:
		return "Oracle"
	case VendorSQLite:
		return "SQLite"
	default:
		return "Unknown"
	}
}

// system is the OpenTelemetry db.system value for the vendor.
func (v Vendor) system() string {
	switch v {
	case VendorMySQL:
		return "mysql"
	case VendorPostgreSQL:
		return "postgresql"
	case VendorOracle:
		return "oracle"
	case VendorSQLite:
		return "sqlite"
	default:
		return "other_sql"
	}
}

// ParseVendor maps a case-insensitive vendor name to a Vendor.
// Unrecognized names return VendorUnknown.
func ParseVendor(name string) Vendor {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mysql":
		return VendorMySQL
	case "postgres", "postgresql", "pg":
		return VendorPostgreSQL
	case "oracle":
		return VendorOracle
	case "sqlite", "sqlite3":
		return VendorSQLite
	default:
		return VendorUnknown
	}
}
