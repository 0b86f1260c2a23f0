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
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Alrightsc/gtnh-flow/pkg/defaults"
	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/machine"
	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

// Engine dispatches recipes to the overclock algorithm of their machine family.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *machine.Catalog
	logger  *slog.Logger
	version string
}

// Option is a functional option for configuring Engine instances.
type Option func(*Engine)

// WithCatalog overrides the embedded machine catalog.
func WithCatalog(c *machine.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithLogger sets the logger that receives overclock diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithVersion sets the build version stamped on batch results.
func WithVersion(v string) Option {
	return func(e *Engine) {
		e.version = v
	}
}

// NewEngine creates an Engine backed by the embedded catalog unless one is supplied.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		c, err := machine.Load()
		if err != nil {
			return nil, gterrors.Wrap(gterrors.ErrCodeInternal, "failed to load machine catalog", err)
		}
		e.catalog = c
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e, nil
}

// Catalog returns the machine catalog the engine dispatches against.
func (e *Engine) Catalog() *machine.Catalog {
	return e.catalog
}

// Resolve returns the family binding for a machine name.
func (e *Engine) Resolve(machineName string) machine.Binding {
	return e.catalog.Resolve(machineName)
}

// Overclock transforms r in place according to its machine family and returns it.
// On error r is left unmodified.
func (e *Engine) Overclock(r *recipe.Recipe) (*recipe.Recipe, error) {
	if r == nil {
		return nil, gterrors.New(gterrors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}

	start := time.Now()
	b := e.catalog.Resolve(r.Machine)

	out, err := e.apply(r, b)
	observe(b.Family, out, err, time.Since(start))
	if err != nil {
		e.logger.Debug("overclock failed",
			"machine", r.Machine,
			"family", b.Family.String(),
			"error", err,
		)
		return nil, err
	}

	e.logger.Debug("overclocked recipe",
		"machine", r.Machine,
		"family", b.Family.String(),
		"tier", r.UserVoltage,
		"eut", r.EUt,
		"duration", r.Duration,
		"parallel", out.parallel,
	)
	return r, nil
}

// OverclockContext is Overclock for callers that carry a request context.
// A context that is already done fails with a timeout error and leaves r
// untouched. The transform itself is not interruptible.
func (e *Engine) OverclockContext(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, gterrors.Wrap(gterrors.ErrCodeTimeout, "overclock canceled", err)
	}
	return e.Overclock(r)
}

func (e *Engine) apply(r *recipe.Recipe, b machine.Binding) (outcome, error) {
	// The chemical plant refuses every recipe, valid or not.
	if b.Family == machine.FamilyChemPlant {
		return chemPlant(r)
	}
	if err := r.Validate(); err != nil {
		return outcome{}, err
	}
	sel, err := selectedTier(r)
	if err != nil {
		return outcome{}, err
	}

	switch b.Family {
	case machine.FamilyPerfect:
		return perfect(r, sel)
	case machine.FamilyHeat:
		return heat(r, sel, e.catalog)
	case machine.FamilyCoilSpeed:
		return coilSpeed(r, sel, e.catalog)
	case machine.FamilyParallel:
		return parallel(r, sel, b, e.logger)
	case machine.FamilyFixedParallel:
		return fixedParallel(r, sel, b, e.logger)
	case machine.FamilyOutputMultiplier:
		return outputMultiplier(r, sel)
	default:
		return standard(r, sel)
	}
}

// OverclockAll overclocks independent recipes concurrently with at most limit
// in flight. Results keep the input order. The first failure cancels the
// remaining work and is returned.
func (e *Engine) OverclockAll(ctx context.Context, recipes []*recipe.Recipe, limit int) ([]*recipe.Recipe, error) {
	if limit <= 0 {
		limit = defaults.BatchParallelism
	}

	results := make([]*recipe.Recipe, len(recipes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, r := range recipes {
		g.Go(func() error {
			out, err := e.OverclockContext(gctx, r)
			if err != nil {
				return fmt.Errorf("recipe %d (%s): %w", i, describe(r), err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SelectedTier parses a recipe's user voltage the way Overclock does.
func SelectedTier(r *recipe.Recipe) (tier.Tier, error) {
	return selectedTier(r)
}

func describe(r *recipe.Recipe) string {
	if r == nil {
		return "nil"
	}
	return r.Machine
}
