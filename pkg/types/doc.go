// Package types defines the public API surface shared by the jsbkit
// decoder, patcher, and verifier: tokens, record shapes, offset tables,
// warnings, and typed errors.
//
// Design goals:
//   - Read-only buffers shared by decode; patch owns its copy exclusively.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories and byte-level context, so a
//     corruption report always names the offset it came from.
//
// This package has no dependencies beyond the standard library.
package types
