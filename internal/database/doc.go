// Package database is the database connectivity Abstract Factory.
//
// A Factory creates a Connection and a Command for one vendor. Both products
// of a factory share the same session, so a command can only run once its
// sibling connection has been opened. MySQL, PostgreSQL and Oracle are
// simulated and log what they would do; SQLite runs against a real
// modernc.org/sqlite database.
//
// The default vendor is chosen at build time with the dboracle, dbpostgres or
// dbsqlite tags; without tags the MySQL family is compiled in.
package database
