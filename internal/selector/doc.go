// SPDX-License-Identifier: MPL-2.0

// Package selector presents the entry stream and collects the user's
// choice.
//
// Two backends are available: command pipes the stream to an external
// selector such as dmenu and reads the chosen lines from its stdout,
// builtin renders an in-process picker (charmbracelet/huh) for systems
// without one. The auto backend picks between them based on whether the
// selector binary is reachable.
//
// A dismissed menu is an empty selection, never an error. External
// selectors signal dismissal by exit status, but the status itself is not
// consulted; only stdout decides.
package selector
