// Package core contains the guard pipeline that gates hash-address
// navigation.
//
// Allowed here:
// - guard contracts, the decision mapping, and the guard registry
// - the pipeline executor, generation tracking, and commit policy
// - message contracts for deferred guard settlement
//
// Not allowed here:
// - route pattern matching (see package route)
// - address/history bookkeeping beyond the committer's replace calls (see
//   package history)
// - any rendering, persistence, or configuration
package core
