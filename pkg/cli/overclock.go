/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Alrightsc/gtnh-flow/pkg/defaults"
	"github.com/Alrightsc/gtnh-flow/pkg/overclock"
	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

func overclockCmd() *cli.Command {
	return &cli.Command{
		Name:                  "overclock",
		Aliases:               []string{"oc"},
		EnableShellCompletion: true,
		Usage:                 "Overclock recipes for a voltage tier",
		Description: `Overclock one recipe described with flags, or every recipe in a recipe book.

A recipe book is a YAML or JSON file with a "recipes" list:

  recipes:
    - machine: electric blast furnace
      user_voltage: EV
      eut: 120
      dur: 400
      coils: HSSG
      heat: 1800
      outputs:
        - {name: titanium ingot, quantity: 1}

--tier fills in user_voltage for recipes that do not set one. Either every
recipe is overclocked or the command fails with the first error.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a recipe book (.yaml, .yml or .json)",
				Sources: cli.EnvVars(envVar("RECIPE_FILE")),
			},
			&cli.StringFlag{
				Name: "tier",
				Usage: fmt.Sprintf("Voltage tier to overclock to (supported values: %s)",
					strings.Join(tier.Names(), ", ")),
				Sources: cli.EnvVars(envVar("TIER")),
			},
			&cli.StringFlag{
				Name:  "machine",
				Usage: "Machine name for a single recipe (e.g. \"electric blast furnace\")",
			},
			&cli.FloatFlag{
				Name:  "eut",
				Usage: "Recipe power draw in EU/t",
			},
			&cli.FloatFlag{
				Name:  "dur",
				Usage: "Recipe duration in ticks",
			},
			&cli.StringFlag{
				Name:  "coils",
				Usage: "Coil material for heat and coil-speed machines",
			},
			&cli.IntFlag{
				Name:  "heat",
				Usage: "Recipe heat in kelvin for heat machines",
			},
			&cli.StringSliceFlag{
				Name:  "ingredient",
				Usage: "Recipe input as name=quantity (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "product",
				Usage: "Recipe output as name=quantity (repeatable)",
			},
			&cli.IntFlag{
				Name:    "parallelism",
				Value:   defaults.BatchParallelism,
				Usage:   "Maximum recipes overclocked concurrently",
				Sources: cli.EnvVars(envVar("PARALLELISM")),
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			book, err := bookFromCmd(cmd)
			if err != nil {
				return err
			}

			e, err := overclock.NewEngine(overclock.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIOverclockTimeout)
			defer cancel()

			out, err := e.OverclockAll(ctx, book.Recipes, cmd.Int("parallelism"))
			if err != nil {
				return fmt.Errorf("overclock failed: %w", err)
			}

			slog.Debug("overclocked recipes", "count", len(out))
			result := &recipe.Book{Recipes: out}
			result.Stamp(version, cmd.String("tier"))
			return writeOutput(ctx, cmd, outFormat, result)
		},
	}
}

// bookFromCmd loads the recipe book named by --file, or builds a single
// recipe from the recipe flags, then applies --tier and validates.
func bookFromCmd(cmd *cli.Command) (*recipe.Book, error) {
	path := cmd.String("file")
	machineName := cmd.String("machine")

	var book *recipe.Book
	switch {
	case path != "" && machineName != "":
		return nil, fmt.Errorf("--file and --machine are mutually exclusive")
	case path != "":
		b, err := recipe.ReadBook(path)
		if err != nil {
			return nil, err
		}
		book = b
	case machineName != "":
		r, err := recipeFromCmd(cmd)
		if err != nil {
			return nil, err
		}
		book = &recipe.Book{Recipes: []*recipe.Recipe{r}}
	default:
		return nil, fmt.Errorf("either --file or --machine is required")
	}

	if t := cmd.String("tier"); t != "" {
		book.WithTier(t)
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return book, nil
}

func recipeFromCmd(cmd *cli.Command) (*recipe.Recipe, error) {
	inputs, err := parseIngredients(cmd.StringSlice("ingredient"))
	if err != nil {
		return nil, fmt.Errorf("invalid --ingredient: %w", err)
	}
	outputs, err := parseIngredients(cmd.StringSlice("product"))
	if err != nil {
		return nil, fmt.Errorf("invalid --product: %w", err)
	}

	r := &recipe.Recipe{
		Machine:  cmd.String("machine"),
		EUt:      cmd.Float("eut"),
		Duration: cmd.Float("dur"),
		Coils:    cmd.String("coils"),
		Inputs:   inputs,
		Outputs:  outputs,
	}
	if cmd.IsSet("heat") {
		h := cmd.Int("heat")
		r.Heat = &h
	}
	return r, nil
}

// parseIngredients parses "name=quantity" items. A missing quantity means 1.
func parseIngredients(items []string) (recipe.IngredientCollection, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make(recipe.IngredientCollection, 0, len(items))
	for _, item := range items {
		name, qty := item, 1.0
		if i := strings.LastIndex(item, "="); i >= 0 {
			name = item[:i]
			v, err := strconv.ParseFloat(strings.TrimSpace(item[i+1:]), 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("invalid quantity in %q", item)
			}
			qty = v
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("missing name in %q", item)
		}
		out = append(out, recipe.Ingredient{Name: name, Quantity: qty})
	}
	return out, nil
}
