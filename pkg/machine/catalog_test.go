package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotNil(t, c)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, c, again, "catalog should be parsed once")
	assert.Same(t, c, MustLoad())
}

func TestCatalog_Coils(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		name  string
		heat  int
		speed float64
	}{
		{"cupronickel", 1801, 0.5},
		{"kanthal", 2701, 1.0},
		{"nichrome", 3601, 1.5},
		{"tungstensteel", 4501, 2.0},
		{"HSSG", 5401, 2.5},
		{"HSSS", 6301, 3.0},
		{"naquadah", 7201, 3.5},
		{"naquadah alloy", 8101, 4.0},
		{"trinium", 9001, 4.5},
		{"electrum flux", 9901, 5.0},
		{"awakened draconium", 10801, 5.5},
	}
	require.Len(t, c.Coils, len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coil, ok := c.Coil(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.heat, coil.Heat)
			assert.InDelta(t, tt.speed, coil.Speed, 1e-9)
		})
	}

	_, ok := c.Coil("hssg")
	assert.False(t, ok, "coil names are case-sensitive")
}

func TestCatalog_PipeCasings(t *testing.T) {
	c := MustLoad()
	want := map[string]int{"bronze": 2, "steel": 4, "titanium": 6, "tungstensteel": 8}
	require.Len(t, c.PipeCasings, len(want))
	for _, p := range c.PipeCasings {
		assert.Equal(t, want[p.Name], p.Rating, p.Name)
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		machine string
		family  Family
	}{
		{"pyrolyse oven", FamilyCoilSpeed},
		{"large chemical reactor", FamilyPerfect},
		{"LCR", FamilyPerfect},
		{"electric blast furnace", FamilyHeat},
		{"EBF", FamilyHeat},
		{"blast furnace", FamilyHeat},
		{"industrial centrifuge", FamilyParallel},
		{"industrial material press", FamilyParallel},
		{"industrial electrolyzer", FamilyParallel},
		{"maceration stack", FamilyParallel},
		{"wire factory", FamilyParallel},
		{"industrial mixing machine", FamilyParallel},
		{"industrial mixer", FamilyParallel},
		{"industrial sifter", FamilyParallel},
		{"large thermal refinery", FamilyParallel},
		{"industrial thermal centrifuge", FamilyParallel},
		{"industrial wash plant", FamilyParallel},
		{"industrial extrusion machine", FamilyParallel},
		{"large processing factory", FamilyParallel},
		{"LPF", FamilyParallel},
		{"high current industrial arc furnace", FamilyParallel},
		{"industrial arc furnace", FamilyParallel},
		{"large scale auto-assembler", FamilyParallel},
		{"cutting factory controller", FamilyParallel},
		{"boldarnator", FamilyParallel},
		{"industrial rock breaker", FamilyParallel},
		{"dangote - distillery", FamilyParallel},
		{"industrial coke oven", FamilyFixedParallel},
		{"ICO", FamilyFixedParallel},
		{"dangote - distillation tower", FamilyFixedParallel},
		{"chem plant", FamilyChemPlant},
		{"chemical plant", FamilyChemPlant},
		{"exxonmobil", FamilyChemPlant},
		{"zhuhai", FamilyOutputMultiplier},
		{"assembler", FamilyStandard},
		{"ebf", FamilyStandard},
		{"", FamilyStandard},
	}

	for _, tt := range tests {
		t.Run(tt.machine, func(t *testing.T) {
			b := c.Resolve(tt.machine)
			assert.Equal(t, tt.family, b.Family)
			assert.Equal(t, tt.machine, b.Machine)
			if tt.family == FamilyParallel {
				assert.NotNil(t, b.Stats)
			}
		})
	}

	assert.Len(t, c.Machines(), 34)
}

func TestCatalog_ResolveSynonyms(t *testing.T) {
	c := MustLoad()

	pairs := [][2]string{
		{"electric blast furnace", "EBF"},
		{"EBF", "blast furnace"},
		{"large chemical reactor", "LCR"},
		{"industrial mixing machine", "industrial mixer"},
		{"large thermal refinery", "industrial thermal centrifuge"},
		{"large processing factory", "LPF"},
		{"high current industrial arc furnace", "industrial arc furnace"},
		{"boldarnator", "industrial rock breaker"},
		{"industrial coke oven", "ICO"},
		{"chem plant", "exxonmobil"},
	}
	for _, p := range pairs {
		a, b := c.Resolve(p[0]), c.Resolve(p[1])
		a.Machine, b.Machine = "", ""
		assert.Equal(t, a, b, "%s vs %s", p[0], p[1])
	}
}

func TestCatalog_BoundParameters(t *testing.T) {
	c := MustLoad()

	ico := c.Resolve("ICO")
	assert.Equal(t, 24, ico.MaxParallel)
	assert.InDelta(t, 0.96, ico.SpeedPerTier, 1e-9)

	tower := c.Resolve("dangote - distillation tower")
	assert.Equal(t, 12, tower.MaxParallel)
	assert.InDelta(t, 1.0, tower.SpeedPerTier, 1e-9, "speed per tier defaults to 1")

	centrifuge := c.Resolve("industrial centrifuge")
	require.NotNil(t, centrifuge.Stats)
	assert.Equal(t, ParallelStats{SpeedBoost: 1.25, EUDiscount: 0.9, ParallelsPerTier: 6}, *centrifuge.Stats)

	distillery := c.Resolve("dangote - distillery")
	require.NotNil(t, distillery.Stats)
	assert.Equal(t, ParallelStats{SpeedBoost: 0, EUDiscount: 1.0, ParallelsPerTier: 48}, *distillery.Stats)
}

func TestCatalog_ResolveDoesNotShareStats(t *testing.T) {
	c := MustLoad()
	b := c.Resolve("industrial sifter")
	b.Stats.ParallelsPerTier = 1000

	assert.Equal(t, 4, c.Resolve("industrial sifter").Stats.ParallelsPerTier)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "coils: ["},
		{"coil without name", "coils:\n  - heat: 1\n    speed: 1\n"},
		{"coil zero heat", "coils:\n  - name: a\n    heat: 0\n    speed: 1\n"},
		{"duplicate coil", "coils:\n  - {name: a, heat: 1, speed: 1}\n  - {name: a, heat: 2, speed: 1}\n"},
		{"unknown family", "machines:\n  - family: magic\n    names: [x]\n"},
		{"no names", "machines:\n  - family: perfect\n"},
		{"empty name", "machines:\n  - family: perfect\n    names: ['']\n"},
		{"duplicate machine", "machines:\n  - family: perfect\n    names: [x]\n  - family: heat\n    names: [x]\n"},
		{"fixed without max", "machines:\n  - family: fixed-parallel\n    names: [x]\n"},
		{"zero parallels per tier", "machines:\n  - family: parallel\n    names: [x]\n    stats: {speedBoost: 1, euDiscount: 1, parallelsPerTier: 0}\n"},
		{"zero discount", "machines:\n  - family: parallel\n    names: [x]\n    stats: {speedBoost: 1, euDiscount: 0, parallelsPerTier: 2}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_ParallelWithoutStats(t *testing.T) {
	c, err := Parse([]byte("machines:\n  - family: parallel\n    names: [mystery multi]\n"))
	require.NoError(t, err)

	b := c.Resolve("mystery multi")
	assert.Equal(t, FamilyParallel, b.Family)
	assert.Nil(t, b.Stats)
}

func TestBindings_Table(t *testing.T) {
	bs := Bindings{
		{Machine: "EBF", Family: FamilyHeat},
		{Machine: "ICO", Family: FamilyFixedParallel, MaxParallel: 24, SpeedPerTier: 0.96},
		{Machine: "wire factory", Family: FamilyParallel, Stats: &ParallelStats{SpeedBoost: 2, EUDiscount: 0.75, ParallelsPerTier: 4}},
	}

	assert.Len(t, bs.TableHeader(), 5)
	rows := bs.TableRows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"EBF", "heat", "", "", ""}, rows[0])
	assert.Equal(t, []string{"ICO", "fixed-parallel", "0.96/tier", "", "24"}, rows[1])
	assert.Equal(t, []string{"wire factory", "parallel", "2", "0.75", "4/tier"}, rows[2])
}

func TestMachines_Sorted(t *testing.T) {
	ms := MustLoad().Machines()
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Machine, ms[i].Machine)
	}
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily(" Heat ")
	require.NoError(t, err)
	assert.Equal(t, FamilyHeat, f)

	_, err = ParseFamily("warp")
	assert.ErrorContains(t, err, "supported values")

	assert.Len(t, Families(), 8)
	for _, fam := range Families() {
		assert.True(t, fam.IsValid())
	}
}
