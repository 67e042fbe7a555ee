// Package repository handles all interactions with the database.
//
// It contains the SQL queries and row types for each entity,
// abstracting store access away from the service layer. Every
// operation is a single-row read or insert executed on a pooled
// connection scoped to the call; identifiers are assigned by the
// store on insert and returned via RETURNING.
package repository
