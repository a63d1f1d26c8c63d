package service

import (
	"sort"
	"strings"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// Sort directions
const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

// SortField names a sortable table column.
type SortField string

const (
	SortNumContrato   SortField = "num_contrato"
	SortNomCredor     SortField = "nom_credor"
	SortDatFim        SortField = "dat_fim"
	SortDiasRestantes SortField = "dias_restantes"
	SortValGlobal     SortField = "val_global"
)

// ParseSortField validates a sort field name, falling back to num_contrato.
func ParseSortField(name string) SortField {
	switch SortField(name) {
	case SortNumContrato, SortNomCredor, SortDatFim, SortDiasRestantes, SortValGlobal:
		return SortField(name)
	}
	return SortNumContrato
}

// sortKey is the comparison value extracted from one record. A missing
// string value (empty) is a null key and sorts last under both directions.
type sortKey struct {
	str     string
	num     float64
	numeric bool
	null    bool
}

func keyFor(c *model.Contract, field SortField) sortKey {
	switch field {
	case SortDiasRestantes:
		return sortKey{num: float64(c.DiasRestantes), numeric: true}
	case SortValGlobal:
		return sortKey{num: c.ValGlobal, numeric: true}
	case SortNomCredor:
		return sortKey{str: c.NomCredor, null: c.NomCredor == ""}
	case SortDatFim:
		return sortKey{str: c.DatFim, null: c.DatFim == ""}
	default:
		return sortKey{str: c.NumContrato, null: c.NumContrato == ""}
	}
}

// SortContracts returns a new slice ordered by field/dir. The sort is stable:
// equal keys keep their relative input order. Null keys are always penalized
// to the end, under ascending AND descending order alike.
func SortContracts(contracts []model.Contract, field SortField, dir string) []model.Contract {
	out := make([]model.Contract, len(contracts))
	copy(out, contracts)

	desc := dir == DirDesc
	sort.SliceStable(out, func(i, j int) bool {
		ki := keyFor(&out[i], field)
		kj := keyFor(&out[j], field)

		if ki.null || kj.null {
			// nulls last regardless of direction
			return !ki.null && kj.null
		}

		var cmp int
		if ki.numeric {
			switch {
			case ki.num < kj.num:
				cmp = -1
			case ki.num > kj.num:
				cmp = 1
			}
		} else {
			cmp = strings.Compare(strings.ToLower(ki.str), strings.ToLower(kj.str))
		}

		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// TotalPages computes the page count for a collection size. Always at least 1
// so the UI can render an empty state on page 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces a 1-based page index into the valid range for total items.
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// Paginate slices out one 1-based page of the collection.
func Paginate(contracts []model.Contract, page, pageSize int) []model.Contract {
	if pageSize <= 0 {
		return contracts
	}
	page = ClampPage(page, len(contracts), pageSize)
	start := (page - 1) * pageSize
	if start >= len(contracts) {
		return []model.Contract{}
	}
	end := start + pageSize
	if end > len(contracts) {
		end = len(contracts)
	}
	return contracts[start:end]
}
