// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from handlers, applies entity rules (password
// hashing, error translation), and calls repository methods to
// interact with the store.
package service
