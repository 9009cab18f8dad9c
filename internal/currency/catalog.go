// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package currency holds the list of selectable currencies and formats
// amounts for display.
package currency

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed currencies.yaml
var defaultCatalog []byte

// Currency is one selectable option.
type Currency struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Catalog is an ordered set of currencies keyed by ISO 4217 code.
type Catalog struct {
	list  []Currency
	index map[string]int
}

type catalogFile struct {
	Currencies []Currency `yaml:"currencies"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded currency catalog: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog. Codes must be three ASCII letters and
// unique; they are stored upper case.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing currency catalog: %w", err)
	}
	if len(f.Currencies) == 0 {
		return nil, fmt.Errorf("currency catalog is empty")
	}

	c := &Catalog{index: make(map[string]int, len(f.Currencies))}
	for _, cur := range f.Currencies {
		code := Normalize(cur.Code)
		if !validCode(code) {
			return nil, fmt.Errorf("invalid currency code %q", cur.Code)
		}
		if _, dup := c.index[code]; dup {
			return nil, fmt.Errorf("duplicate currency code %s", code)
		}
		c.index[code] = len(c.list)
		c.list = append(c.list, Currency{Code: code, Name: cur.Name})
	}
	return c, nil
}

// Normalize trims and upper-cases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup finds code, ignoring case and surrounding space.
func (c *Catalog) Lookup(code string) (Currency, bool) {
	i, ok := c.index[Normalize(code)]
	if !ok {
		return Currency{}, false
	}
	return c.list[i], true
}

// All returns the currencies in catalog order.
func (c *Catalog) All() []Currency {
	out := make([]Currency, len(c.list))
	copy(out, c.list)
	return out
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
