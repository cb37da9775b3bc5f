// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure: nil constructor,
// empty result or an edge to an unknown node.
var ErrConstructFailed = errors.New("builder: construction failed")
