package service

import (
	"sort"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// Options maps the full (unfiltered) collection to one field's values,
// drops empties, de-duplicates and sorts. Dropdown contents are always
// derived from what actually occurs in the collection; there is no separate
// lookup table.
func Options(contracts []model.Contract, get func(*model.Contract) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for i := range contracts {
		v := get(&contracts[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func StatusOptions(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.StatusVigencia })
}

func SectorOptions(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.Class1Setor })
}

func TypeOptions(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.Class2Tipo })
}

func SubacaoOptions(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.NmSubacao })
}

func Classif1Options(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.Classif1 })
}

func TipoDocumentoOptions(contracts []model.Contract) []string {
	return Options(contracts, func(c *model.Contract) string { return c.TipoDocumento() })
}

// Classif2Options derives the level-2 candidates scoped to the selected
// level-1 value. classif1 acts as a partition key: only records whose
// classif1 equals the selection contribute. An empty or "todos" selection
// skips the partitioning and derives from the whole collection. Must be
// recomputed whenever the collection or the selection changes.
func Classif2Options(contracts []model.Contract, classif1 string) []string {
	scoped := contracts
	if classif1 != "" && classif1 != FilterAll {
		scoped = make([]model.Contract, 0, len(contracts))
		for i := range contracts {
			if contracts[i].Classif1 == classif1 {
				scoped = append(scoped, contracts[i])
			}
		}
	}
	return Options(scoped, func(c *model.Contract) string { return c.Classif2 })
}
