// Package advisor is the boundary to the external room-suggestion
// service. It is an opaque text-generation call: preferences and an
// availability summary go in, a suggested room and rationale come out.
// The core treats the advisor as best-effort and carries on without a
// suggestion whenever the call fails.
package advisor
