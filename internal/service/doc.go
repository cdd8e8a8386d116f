// Package service contains the business logic for users, contacts and
// addresses: ownership and existence checks, search pagination, and
// field-level update semantics. Services raise typed errors from the store
// and auth packages; they never format HTTP responses themselves.
package service
