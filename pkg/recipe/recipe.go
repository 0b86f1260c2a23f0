// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

import (
	"fmt"
	"math"
	"strings"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
)

// Field keys as they appear in recipe files and error messages.
const (
	KeyMachine     = "machine"
	KeyEUt         = "eut"
	KeyDuration    = "dur"
	KeyUserVoltage = "user_voltage"
	KeyCoils       = "coils"
	KeyHeat        = "heat"
)

// Recipe is a single crafting recipe in a chosen machine and tier.
// Overclocking mutates EUt, Duration and the ingredient quantities in place.
type Recipe struct {
	Machine     string               `json:"machine" yaml:"machine"`
	UserVoltage string               `json:"user_voltage" yaml:"user_voltage"`
	EUt         float64              `json:"eut" yaml:"eut"`
	Duration    float64              `json:"dur" yaml:"dur"`
	Inputs      IngredientCollection `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs     IngredientCollection `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	// Coils names the coil material; required by heat-aware and coil-speed machines.
	Coils string `json:"coils,omitempty" yaml:"coils,omitempty"`
	// Heat is the recipe's base heat requirement; required by heat-aware machines.
	Heat *int `json:"heat,omitempty" yaml:"heat,omitempty"`
}

// Validate checks the fields every overclock family relies on.
func (r *Recipe) Validate() error {
	if r == nil {
		return gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}
	if strings.TrimSpace(r.Machine) == "" {
		return gterrors.Configuration(r.Machine, KeyMachine, "machine name is empty")
	}
	if strings.TrimSpace(r.UserVoltage) == "" {
		return gterrors.Configuration(r.Machine, KeyUserVoltage, "no tier selected")
	}
	if r.EUt < 0 || math.IsNaN(r.EUt) || math.IsInf(r.EUt, 0) {
		return gterrors.Configuration(r.Machine, KeyEUt, fmt.Sprintf("must be a finite non-negative number, got %v", r.EUt))
	}
	if r.Duration <= 0 || math.IsNaN(r.Duration) || math.IsInf(r.Duration, 0) {
		return gterrors.Configuration(r.Machine, KeyDuration, fmt.Sprintf("must be a finite positive number, got %v", r.Duration))
	}
	return nil
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	c.Inputs = r.Inputs.Clone()
	c.Outputs = r.Outputs.Clone()
	if r.Heat != nil {
		h := *r.Heat
		c.Heat = &h
	}
	return &c
}

// String returns a one-line description used in logs and error context.
func (r *Recipe) String() string {
	if r == nil {
		return "<nil recipe>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s @ %s: %g EU/t for %g ticks", r.Machine, r.UserVoltage, r.EUt, r.Duration)
	if len(r.Inputs) > 0 {
		fmt.Fprintf(&b, " in=[%s]", r.Inputs)
	}
	if len(r.Outputs) > 0 {
		fmt.Fprintf(&b, " out=[%s]", r.Outputs)
	}
	if r.Coils != "" {
		fmt.Fprintf(&b, " coils=%s", r.Coils)
	}
	if r.Heat != nil {
		fmt.Fprintf(&b, " heat=%d", *r.Heat)
	}
	return b.String()
}
