package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tier
		wantErr bool
	}{
		{"LV", "LV", LV, false},
		{"lowercase", "hv", HV, false},
		{"mixed case", "LuV", LuV, false},
		{"lowercase luv", "luv", LuV, false},
		{"padded", "  ZPM ", ZPM, false},
		{"top", "UHV", UHV, false},
		{"empty", "", LV, true},
		{"unknown", "UEV", LV, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCeilingsStrictlyIncreasing(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Ceiling(), all[i-1].Ceiling(), "tier %s", all[i])
	}
}

func TestForPower(t *testing.T) {
	tests := []struct {
		eut  float64
		want Tier
	}{
		{1, LV},
		{32, LV},
		{32.5, LV},
		{33, MV},
		{128, MV},
		{129, HV},
		{1000, EV},
		{2048, EV},
		{2097152, UHV},
		{2097153, Tier(Count)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ForPower(tt.eut), "eut=%v", tt.eut)
	}
}

func TestForPowerScaled(t *testing.T) {
	assert.Equal(t, LV, ForPowerScaled(120, 4))
	assert.Equal(t, LV, ForPowerScaled(128, 4))
	assert.Equal(t, LV, ForPowerScaled(129, 4))
	assert.Equal(t, LV, ForPowerScaled(131, 4))
	assert.Equal(t, MV, ForPowerScaled(132, 4))
	assert.Equal(t, MV, ForPowerScaled(515, 4))
	assert.Equal(t, HV, ForPowerScaled(516, 4))
	assert.Equal(t, MV, ForPowerScaled(480, 4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "LuV", LuV.String())
	assert.Equal(t, "tier(9)", Tier(Count).String())
	assert.Equal(t, float64(0), Tier(-1).Ceiling())
	assert.False(t, Tier(Count).IsValid())
}

func TestTable(t *testing.T) {
	infos := Table()
	assert.Len(t, infos, Count)
	assert.Equal(t, Info{Name: "LV", Index: 0, Ceiling: 32}, infos[0])
	assert.Equal(t, Info{Name: "UHV", Index: 8, Ceiling: 2097152}, infos[Count-1])

	rows := infos.TableRows()
	assert.Equal(t, []string{"EV", "3", "2048"}, rows[3])
	assert.Len(t, infos.TableHeader(), 3)
}
