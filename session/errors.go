// SPDX-License-Identifier: MIT
// Package: fsklab/session
//
// errors.go — sentinel errors for the session registry.

package session

import "errors"

// ErrSessionNotFound reports an id that is not (or no longer) registered.
var ErrSessionNotFound = errors.New("session: not found")
