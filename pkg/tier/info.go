package tier

import "strconv"

// Info describes one tier for listings.
type Info struct {
	Name    string  `json:"name" yaml:"name"`
	Index   int     `json:"index" yaml:"index"`
	Ceiling float64 `json:"ceiling" yaml:"ceiling"`
}

// Infos is a renderable tier listing.
type Infos []Info

// Table lists every tier in ascending order.
func Table() Infos {
	out := make(Infos, 0, Count)
	for _, t := range All() {
		out = append(out, Info{Name: t.String(), Index: t.Index(), Ceiling: t.Ceiling()})
	}
	return out
}

// TableHeader implements serializer.Tabular.
func (is Infos) TableHeader() []string {
	return []string{"TIER", "INDEX", "MAX EU/T"}
}

// TableRows implements serializer.Tabular.
func (is Infos) TableRows() [][]string {
	rows := make([][]string, len(is))
	for i, info := range is {
		rows[i] = []string{info.Name, strconv.Itoa(info.Index), strconv.FormatFloat(info.Ceiling, 'f', -1, 64)}
	}
	return rows
}
