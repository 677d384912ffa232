// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord indicates a LoadedMember or LoadedGroup failed validation
// (zero id, coordinates or rating out of range, zero id inside a list).
var ErrInvalidRecord = errors.New("builder: invalid record")

// ErrDanglingReference indicates a member listed a group that was not loaded
// while WithStrictGroups is in effect.
var ErrDanglingReference = errors.New("builder: dangling group reference")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooFewMembers indicates the graph is too small for the requested constructor.
var ErrTooFewMembers = errors.New("builder: too few members or groups")

// ErrBadCount indicates a negative count parameter.
var ErrBadCount = errors.New("builder: invalid count")

// ErrConstructFailed indicates that construction could not proceed
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context:
// "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
