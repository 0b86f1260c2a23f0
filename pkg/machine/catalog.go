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

package machine

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/machines.yaml
var machineData []byte

var (
	catalogOnce   sync.Once
	cachedCatalog *Catalog
	catalogErr    error
)

// Coil is a heating coil material.
type Coil struct {
	Name  string  `json:"name" yaml:"name"`
	Heat  int     `json:"heat" yaml:"heat"`
	Speed float64 `json:"speed" yaml:"speed"`
}

// PipeCasing is a chemical plant pipe casing and its throughput rating.
type PipeCasing struct {
	Name   string `json:"name" yaml:"name"`
	Rating int    `json:"rating" yaml:"rating"`
}

// ParallelStats are the per-machine constants of a table-driven parallel machine.
type ParallelStats struct {
	SpeedBoost       float64 `json:"speedBoost" yaml:"speedBoost"`
	EUDiscount       float64 `json:"euDiscount" yaml:"euDiscount"`
	ParallelsPerTier int     `json:"parallelsPerTier" yaml:"parallelsPerTier"`
}

// Group binds a set of synonymous machine names to one family.
type Group struct {
	Family       Family         `json:"family" yaml:"family"`
	Names        []string       `json:"names" yaml:"names"`
	Stats        *ParallelStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	MaxParallel  int            `json:"maxParallel,omitempty" yaml:"maxParallel,omitempty"`
	SpeedPerTier float64        `json:"speedPerTier,omitempty" yaml:"speedPerTier,omitempty"`
}

// Binding is the resolved family and bound parameters for one machine name.
type Binding struct {
	Machine      string         `json:"machine" yaml:"machine"`
	Family       Family         `json:"family" yaml:"family"`
	Stats        *ParallelStats `json:"stats,omitempty" yaml:"stats,omitempty"`
	MaxParallel  int            `json:"maxParallel,omitempty" yaml:"maxParallel,omitempty"`
	SpeedPerTier float64        `json:"speedPerTier,omitempty" yaml:"speedPerTier,omitempty"`
}

// Catalog holds the constant tables and the machine registry.
// It is immutable once built and safe for concurrent use.
type Catalog struct {
	Coils       []Coil       `json:"coils" yaml:"coils"`
	PipeCasings []PipeCasing `json:"pipeCasings" yaml:"pipeCasings"`
	Groups      []Group      `json:"machines" yaml:"machines"`

	coils    map[string]Coil
	bindings map[string]Binding
}

// Load returns the embedded catalog, parsing it on first use.
func Load() (*Catalog, error) {
	catalogOnce.Do(func() {
		cachedCatalog, catalogErr = Parse(machineData)
		if catalogErr != nil {
			catalogErr = fmt.Errorf("failed to load embedded machine data: %w", catalogErr)
		}
	})
	return cachedCatalog, catalogErr
}

// MustLoad is Load for callers that treat a broken embedded table as a programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalog from YAML and indexes it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal machine data: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	c.coils = make(map[string]Coil, len(c.Coils))
	for _, coil := range c.Coils {
		if coil.Name == "" {
			return fmt.Errorf("coil entry without a name")
		}
		if coil.Heat <= 0 || coil.Speed <= 0 {
			return fmt.Errorf("coil %q must have positive heat and speed", coil.Name)
		}
		if _, dup := c.coils[coil.Name]; dup {
			return fmt.Errorf("duplicate coil %q", coil.Name)
		}
		c.coils[coil.Name] = coil
	}

	c.bindings = make(map[string]Binding)
	for i, g := range c.Groups {
		if !g.Family.IsValid() {
			return fmt.Errorf("machine group %d: invalid family %q", i, g.Family)
		}
		if len(g.Names) == 0 {
			return fmt.Errorf("machine group %d (%s) has no names", i, g.Family)
		}
		if g.Family == FamilyFixedParallel && g.MaxParallel <= 0 {
			return fmt.Errorf("machine group %d (%s) requires a positive maxParallel", i, g.Family)
		}
		if s := g.Stats; s != nil && (s.SpeedBoost < 0 || s.EUDiscount <= 0 || s.ParallelsPerTier <= 0) {
			return fmt.Errorf("machine group %d (%s) has invalid parallel stats %+v", i, g.Family, *s)
		}
		speed := g.SpeedPerTier
		if g.Family == FamilyFixedParallel && speed == 0 {
			speed = 1
		}
		for _, name := range g.Names {
			if name == "" {
				return fmt.Errorf("machine group %d (%s) has an empty name", i, g.Family)
			}
			if _, dup := c.bindings[name]; dup {
				return fmt.Errorf("machine %q is registered more than once", name)
			}
			b := Binding{
				Machine:      name,
				Family:       g.Family,
				MaxParallel:  g.MaxParallel,
				SpeedPerTier: speed,
			}
			if g.Stats != nil {
				s := *g.Stats
				b.Stats = &s
			}
			c.bindings[name] = b
		}
	}
	return nil
}

// Resolve returns the binding for a machine name. Names are matched exactly;
// unregistered machines resolve to the standard family.
func (c *Catalog) Resolve(machine string) Binding {
	if b, ok := c.bindings[machine]; ok {
		return b
	}
	return Binding{Machine: machine, Family: FamilyStandard}
}

// IsRegistered reports whether machine has an explicit binding.
func (c *Catalog) IsRegistered(machine string) bool {
	_, ok := c.bindings[machine]
	return ok
}

// Coil looks up a coil material by name.
func (c *Catalog) Coil(name string) (Coil, bool) {
	coil, ok := c.coils[name]
	return coil, ok
}

// Machines returns every registered binding sorted by machine name.
func (c *Catalog) Machines() Bindings {
	out := make(Bindings, 0, len(c.bindings))
	for _, b := range c.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Machine < out[j].Machine
	})
	return out
}

// Bindings is a list of machine bindings renderable as a table.
type Bindings []Binding

// TableHeader implements serializer.Tabular.
func (bs Bindings) TableHeader() []string {
	return []string{"MACHINE", "FAMILY", "SPEED BOOST", "EU DISCOUNT", "PARALLEL"}
}

// TableRows implements serializer.Tabular.
func (bs Bindings) TableRows() [][]string {
	rows := make([][]string, 0, len(bs))
	for _, b := range bs {
		row := []string{b.Machine, b.Family.String(), "", "", ""}
		switch {
		case b.Stats != nil:
			row[2] = formatFloat(b.Stats.SpeedBoost)
			row[3] = formatFloat(b.Stats.EUDiscount)
			row[4] = strconv.Itoa(b.Stats.ParallelsPerTier) + "/tier"
		case b.Family == FamilyFixedParallel:
			row[2] = formatFloat(b.SpeedPerTier) + "/tier"
			row[4] = strconv.Itoa(b.MaxParallel)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
