// Package store provides abstractions for data persistence. It defines the
// interfaces implemented by the postgres platform package, the shared error
// sentinels used for error dispatch at the API boundary, and the transaction
// helper used by services that need check-then-mutate atomicity.
package store
