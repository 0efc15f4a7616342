// Package catalog is the keyed registry of example functions that the
// limitkit core's collaborators consume: a plain identifier → descriptor
// lookup, nothing more.
//
// Each Descriptor pairs a callable with the metadata a presentation layer
// wants — a display name, a one-line summary, a plotting domain, and the
// points of interest where the function's behavior is worth examining.
// The evaluation core itself never depends on any of this; it only ever
// receives the bare core.Func.
//
// There is deliberately no package-level default registry: construct one
// with Builtin (the classic shapes — polynomial, removable hole, jump,
// pole, bounded oscillation) or NewRegistry, and pass it where needed.
// A Registry is safe for concurrent use; the usual pattern is to
// register everything during setup and only Lookup afterwards.
//
// Errors (sentinel):
//
//   - ErrEmptyID         on registering a descriptor without an ID.
//   - ErrNilFunc         on registering a descriptor without a callable.
//   - ErrDuplicateID     on registering an ID twice.
//   - ErrUnknownFunction on looking up an ID that was never registered.
package catalog
