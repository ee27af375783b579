// SPDX-License-Identifier: MPL-2.0

// Package runtime dispatches resolved menu commands.
//
// Two runtime implementations are available:
//   - native: spawns each command through an external shell and detaches,
//     so the launcher exits as soon as the batch is spawned
//   - virtual: interprets each command in-process with an embedded POSIX
//     shell (mvdan/sh) and waits for it, reporting the first nonzero exit
//
// Both implement the Runtime interface with Name(), Available(), Validate()
// and Dispatch(). A Registry maps runtime modes to implementations;
// NewDefaultRegistry registers both.
package runtime
