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

package overclock

import (
	"math"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

// Count returns how many tiers the selected tier sits above the recipe's
// intrinsic tier. A recipe that needs more power than the selected tier
// supplies fails with a negative overclock error.
func Count(r *recipe.Recipe) (int, error) {
	if r == nil {
		return 0, gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}
	sel, err := selectedTier(r)
	if err != nil {
		return 0, err
	}
	return count(r, sel)
}

func count(r *recipe.Recipe, sel tier.Tier) (int, error) {
	base := tier.ForPower(r.EUt)
	n := int(sel) - int(base)
	if n < 0 {
		return 0, gterrors.NegativeOverclock(r.Machine, tierName(base), sel.String())
	}
	return n, nil
}

// selectedTier parses the recipe's user voltage.
func selectedTier(r *recipe.Recipe) (tier.Tier, error) {
	t, err := tier.Parse(r.UserVoltage)
	if err != nil {
		return tier.LV, gterrors.Configuration(r.Machine, recipe.KeyUserVoltage, err.Error())
	}
	return t, nil
}

// tierName names t, including power beyond the top tier.
func tierName(t tier.Tier) string {
	if t.IsValid() {
		return t.String()
	}
	return "above " + tier.UHV.String()
}

func pow(base float64, n int) float64 {
	return math.Pow(base, float64(n))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
