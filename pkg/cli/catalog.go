package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Alrightsc/gtnh-flow/pkg/machine"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
	"github.com/Alrightsc/gtnh-flow/pkg/tier"
)

func machinesCmd() *cli.Command {
	return &cli.Command{
		Name:  "machines",
		Usage: "List registered machines and their overclock families",
		Description: `List every machine name the engine recognizes together with its family and
GT++ constants. Machines not listed here are overclocked with the standard
family.

With --coils the available coil materials are listed instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "family",
				Usage: fmt.Sprintf("Only list machines of this family (supported values: %s)",
					strings.Join(familyNames(), ", ")),
			},
			&cli.BoolFlag{
				Name:  "coils",
				Usage: "List coil materials with their heat and speed",
			},
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cat, err := machine.Load()
			if err != nil {
				return fmt.Errorf("failed to load machine catalog: %w", err)
			}

			if cmd.Bool("coils") {
				return writeOutput(ctx, cmd, outFormat, coilTable(cat.Coils))
			}

			machines := cat.Machines()
			if v := cmd.String("family"); v != "" {
				f, err := machine.ParseFamily(v)
				if err != nil {
					return err
				}
				machines = filterFamily(machines, f)
			}
			return writeOutput(ctx, cmd, outFormat, machines)
		},
	}
}

func familyNames() []string {
	fs := machine.Families()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return names
}

func filterFamily(bs machine.Bindings, f machine.Family) machine.Bindings {
	out := make(machine.Bindings, 0, len(bs))
	for _, b := range bs {
		if b.Family == f {
			out = append(out, b)
		}
	}
	return out
}

// coilTable lays coils out as a table while keeping their plain encoding.
type coilTable []machine.Coil

func (c coilTable) TableHeader() []string {
	return []string{"COIL", "HEAT", "SPEED"}
}

func (c coilTable) TableRows() [][]string {
	rows := make([][]string, 0, len(c))
	for _, coil := range c {
		rows = append(rows, []string{coil.Name, fmt.Sprintf("%d", coil.Heat), fmt.Sprintf("%gx", coil.Speed)})
	}
	return rows
}

func tiersCmd() *cli.Command {
	return &cli.Command{
		Name:  "tiers",
		Usage: "List voltage tiers and their EU/t ceilings",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			var data any = tier.Table()
			if outFormat == serializer.FormatTable {
				data = localizedTiers{
					infos:   tier.Table(),
					printer: message.NewPrinter(language.English),
				}
			}
			return writeOutput(ctx, cmd, outFormat, data)
		},
	}
}

// localizedTiers renders ceilings with thousands separators.
type localizedTiers struct {
	infos   tier.Infos
	printer *message.Printer
}

func (l localizedTiers) TableHeader() []string {
	return l.infos.TableHeader()
}

func (l localizedTiers) TableRows() [][]string {
	rows := make([][]string, 0, len(l.infos))
	for _, info := range l.infos {
		rows = append(rows, []string{
			info.Name,
			l.printer.Sprintf("%d", info.Index),
			l.printer.Sprintf("%d", int64(info.Ceiling)),
		})
	}
	return rows
}
