// Package operations defines the entities and contracts for recording cipher
// executions, including the operation metadata entity, its query filter and the
// service and repository interfaces built around them.
package operations
