/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"
)

// Registry resolves a vc type to its builder. It is immutable after construction.
type Registry struct {
	builders map[Type]Builder
}

// NewRegistry requires exactly one builder per supported type.
func NewRegistry(builders ...Builder) (*Registry, error) {
	r := &Registry{builders: make(map[Type]Builder, len(AllTypes()))}

	for _, t := range AllTypes() {
		for _, b := range builders {
			if !b.Supports(t) {
				continue
			}

			if _, ok := r.builders[t]; ok {
				return nil, fmt.Errorf("more than one builder supports %s", t)
			}

			r.builders[t] = b
		}

		if _, ok := r.builders[t]; !ok {
			return nil, fmt.Errorf("no builder supports %s", t)
		}
	}

	return r, nil
}

// Resolve returns the builder for vcType.
func (r *Registry) Resolve(vcType string) (Builder, Type, error) {
	t, err := ParseType(vcType)
	if err != nil {
		return nil, "", err
	}

	return r.builders[t], t, nil
}
