// SPDX-License-Identifier: MIT
//
// File: dataset.go
// Role: Loader-facing input types and their validation.
// Policy:
//   - Field rules live in struct tags and are enforced by go-playground/validator.
//   - Cross-field rules (start/end must name a node) are checked by Build.
//   - Every validation failure is reported as ErrMalformedGraph.

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EdgeSpec is one outgoing edge of a NodeSpec.
type EdgeSpec struct {
	To     string  `json:"to" msgpack:"to" validate:"required"`
	Weight float64 `json:"weight" msgpack:"weight" validate:"finite,gte=0"`
}

// NodeSpec declares a node, its outgoing edges (in order) and its heuristic.
//
// NoHeuristic marks a declaration that carried no heuristic at all. Such a
// declaration leaves the node's current heuristic untouched instead of
// resetting it to Heuristic's zero value.
type NodeSpec struct {
	Name        string     `json:"name" msgpack:"name" validate:"required"`
	Edges       []EdgeSpec `json:"edges" msgpack:"edges" validate:"dive"`
	Heuristic   float64    `json:"heuristic" msgpack:"heuristic" validate:"finite,gte=0"`
	NoHeuristic bool       `json:"noHeuristic,omitempty" msgpack:"noHeuristic,omitempty"`
}

// Dataset is the already-parsed graph definition handed over by a loader.
//
// Nodes are processed in order. A name may appear as an edge target before
// (or without) its own NodeSpec; such a node starts with heuristic 0 and is
// corrected when its NodeSpec is reached.
type Dataset struct {
	Name  string     `json:"name,omitempty" msgpack:"name"`
	Nodes []NodeSpec `json:"nodes" msgpack:"nodes" validate:"dive"`
	Start string     `json:"start" msgpack:"start" validate:"required"`
	End   string     `json:"end" msgpack:"end" validate:"required"`
}

// validate is the shared validator instance; it is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "finite" rejects NaN and ±Inf, which gte=0 alone would let through (+Inf).
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Validate checks the field-level rules of ds and reports the first
// violation wrapped in ErrMalformedGraph.
func (ds Dataset) Validate() error {
	err := validate.Struct(ds)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrMalformedGraph, err)
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Dataset.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrMalformedGraph, field)
	case "finite":
		return fmt.Errorf("%w: %s=%v is not a finite number", ErrMalformedGraph, field, fe.Value())
	case "gte":
		return fmt.Errorf("%w: %s=%v must be >= %s", ErrMalformedGraph, field, fe.Value(), fe.Param())
	default:
		return fmt.Errorf("%w: %s fails %q", ErrMalformedGraph, field, fe.Tag())
	}
}
