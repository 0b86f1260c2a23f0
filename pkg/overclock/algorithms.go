package overclock

import (
	"fmt"
	"log/slog"
	"math"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/machine"
	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

const (
	// MinDuration is the shortest recipe duration in ticks the parallel
	// families will overclock down to.
	MinDuration = 20

	// heatScale multiplies the tier ceilings when finding a blast furnace's base tier.
	heatScale = 4

	heatDiscountStep = 900
	heatPerfectStep  = 1800
	heatDiscount     = 0.95
	heatPerTier      = 100

	// KeyStats names the missing parallel constants in configuration errors.
	KeyStats = "stats"
)

// outcome summarizes what an algorithm did, for metrics and logs.
type outcome struct {
	steps    int
	parallel int
}

func standard(r *recipe.Recipe, sel tier.Tier) (outcome, error) {
	n, err := count(r, sel)
	if err != nil {
		return outcome{}, err
	}
	r.EUt *= pow(4, n)
	r.Duration /= pow(2, n)
	return outcome{steps: n, parallel: 1}, nil
}

func perfect(r *recipe.Recipe, sel tier.Tier) (outcome, error) {
	n, err := count(r, sel)
	if err != nil {
		return outcome{}, err
	}
	r.EUt *= pow(4, n)
	r.Duration /= pow(4, n)
	return outcome{steps: n, parallel: 1}, nil
}

// heat overclocks a blast furnace. The overclock count is not rejected when
// negative; it only caps the free perfect overclocks.
func heat(r *recipe.Recipe, sel tier.Tier, cat *machine.Catalog) (outcome, error) {
	if r.Coils == "" {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyCoils, "coil material is required")
	}
	if r.Heat == nil {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyHeat, "recipe heat is required")
	}
	coil, ok := cat.Coil(r.Coils)
	if !ok {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyCoils, fmt.Sprintf("unknown coil %q", r.Coils))
	}

	base := tier.ForPowerScaled(r.EUt, heatScale)
	n := int(sel) - int(base)

	actualHeat := coil.Heat + heatPerTier*min(0, int(sel)-1)
	excess := actualHeat - *r.Heat
	discount := math.Pow(heatDiscount, float64(floorDiv(excess, heatDiscountStep)))
	perfects := max(min(floorDiv(excess, heatPerfectStep), n), 0)

	r.EUt = r.EUt * pow(4, n) * discount
	r.Duration = r.Duration / pow(2, n) / pow(2, perfects)
	return outcome{steps: n + perfects, parallel: 1}, nil
}

func coilSpeed(r *recipe.Recipe, sel tier.Tier, cat *machine.Catalog) (outcome, error) {
	if r.Coils == "" {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyCoils, "coil material is required")
	}
	coil, ok := cat.Coil(r.Coils)
	if !ok {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyCoils, fmt.Sprintf("unknown coil %q", r.Coils))
	}
	n, err := count(r, sel)
	if err != nil {
		return outcome{}, err
	}
	r.EUt *= pow(4, n)
	r.Duration = r.Duration / pow(2, n) / coil.Speed
	return outcome{steps: n, parallel: 1}, nil
}

// parallel runs a table-driven GT++ machine.
func parallel(r *recipe.Recipe, sel tier.Tier, b machine.Binding, logger *slog.Logger) (outcome, error) {
	if b.Stats == nil {
		return outcome{}, gterrors.Configuration(r.Machine, KeyStats, "no parallel constants are registered for this machine")
	}
	s := *b.Stats
	speedFactor := 1 / (s.SpeedBoost + 1)
	maxParallel := (int(sel) + 1) * s.ParallelsPerTier
	dur := math.Max(r.Duration*speedFactor, MinDuration)
	return batch(r, sel, r.EUt*s.EUDiscount, maxParallel, dur, logger)
}

// fixedParallel runs a GT++ machine whose parallel cap does not grow with tier.
func fixedParallel(r *recipe.Recipe, sel tier.Tier, b machine.Binding, logger *slog.Logger) (outcome, error) {
	speed := b.SpeedPerTier
	if speed == 0 {
		speed = 1
	}
	dur := round2(r.Duration * pow(speed, int(sel)+1))
	return batch(r, sel, r.EUt, b.MaxParallel, dur, logger)
}

// batch parallelizes the recipe under the selected tier's ceiling, then spends
// the remaining headroom on 4x power / 2x speed steps while the batch still
// fits and the duration stays at or above MinDuration.
func batch(r *recipe.Recipe, sel tier.Tier, perUnit float64, maxParallel int, dur float64, logger *slog.Logger) (outcome, error) {
	if perUnit <= 0 {
		return outcome{}, gterrors.Configuration(r.Machine, recipe.KeyEUt, "parallel machines need a positive EU/t")
	}
	available := sel.Ceiling()
	par := int(math.Min(math.Floor(available/perUnit), float64(maxParallel)))
	if par < 1 {
		return outcome{}, gterrors.NegativeOverclock(r.Machine, tierName(tier.ForPower(perUnit)), sel.String())
	}
	total := perUnit * float64(par)

	logger.Debug("base parallel overclock stats",
		"machine", r.Machine,
		"availableEUt", available,
		"maxParallel", maxParallel,
		"duration", dur,
		"totalEUt", total,
		"parallel", par,
	)

	steps := 0
	for total < available {
		ocEUt := total * 4
		ocDur := dur / 2
		if ocEUt > available || ocDur < MinDuration {
			break
		}
		total, dur = ocEUt, ocDur
		steps++
		logger.Debug("parallel overclock step",
			"machine", r.Machine,
			"step", steps,
			"eut", total,
			"duration", dur,
			"parallel", par,
		)
	}

	r.EUt = total
	r.Duration = dur
	r.Inputs.Scale(par)
	r.Outputs.Scale(par)
	return outcome{steps: steps, parallel: par}, nil
}

func chemPlant(r *recipe.Recipe) (outcome, error) {
	return outcome{}, gterrors.Unimplemented(r.Machine, machine.FamilyChemPlant.String())
}

// outputMultiplier overclocks normally, then adds a fixed per-tier output bonus.
func outputMultiplier(r *recipe.Recipe, sel tier.Tier) (outcome, error) {
	out, err := standard(r, sel)
	if err != nil {
		return out, err
	}
	r.Outputs.Scale(OutputBonus(sel))
	return out, nil
}

// OutputBonus is the output multiplier an output-multiplier machine gets at t.
func OutputBonus(t tier.Tier) int {
	return (int(t) + 2) * 2
}
