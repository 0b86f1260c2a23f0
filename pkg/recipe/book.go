package recipe

import (
	"fmt"
	"strconv"

	"github.com/Alrightsc/gtnh-flow/pkg/header"
	"github.com/Alrightsc/gtnh-flow/pkg/serializer"
)

// Book is a file-level collection of recipes.
type Book struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []*Recipe `json:"recipes" yaml:"recipes"`
}

// ReadBook parses a recipe book from a .yaml, .yml or .json file without
// validating it. Unknown fields are rejected so typos in optional keys such
// as "coils" surface early.
func ReadBook(path string) (*Book, error) {
	book, err := serializer.FromFile[Book](path, serializer.WithStrict(true))
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe book %q: %w", path, err)
	}
	if !book.Kind.IsValid() {
		return nil, fmt.Errorf("recipe book %q has unsupported kind %q", path, book.Kind)
	}
	return book, nil
}

// LoadBook reads and validates a recipe book.
func LoadBook(path string) (*Book, error) {
	book, err := ReadBook(path)
	if err != nil {
		return nil, err
	}
	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recipe book %q: %w", path, err)
	}
	return book, nil
}

// Validate validates every recipe in the book.
func (b *Book) Validate() error {
	if b == nil || len(b.Recipes) == 0 {
		return fmt.Errorf("recipe book has no recipes")
	}
	for i, r := range b.Recipes {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("recipe at index %d: %w", i, err)
		}
	}
	return nil
}

// WithTier sets the selected tier on every recipe that does not already carry one.
func (b *Book) WithTier(name string) {
	for _, r := range b.Recipes {
		if r != nil && r.UserVoltage == "" {
			r.UserVoltage = name
		}
	}
}

// Stamp marks the book as an overclock result produced by the given build
// version. A non-empty tier is recorded in the metadata.
func (b *Book) Stamp(version, tierName string) {
	b.Header = header.New(header.KindOverclockResult,
		header.WithMetadata("version", version),
		header.WithMetadata("tier", tierName),
	)
}

// TableHeader implements serializer.Tabular.
func (b *Book) TableHeader() []string {
	return []string{"MACHINE", "TIER", "EU/T", "TICKS", "INPUTS", "OUTPUTS"}
}

// TableRows implements serializer.Tabular.
func (b *Book) TableRows() [][]string {
	rows := make([][]string, 0, len(b.Recipes))
	for _, r := range b.Recipes {
		if r == nil {
			continue
		}
		rows = append(rows, []string{
			r.Machine,
			r.UserVoltage,
			strconv.FormatFloat(r.EUt, 'f', 2, 64),
			strconv.FormatFloat(r.Duration, 'f', 2, 64),
			r.Inputs.String(),
			r.Outputs.String(),
		})
	}
	return rows
}
