package service

import (
	"strings"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// FilterAll is the dropdown sentinel meaning "no constraint on this field".
const FilterAll = "todos"

// Filters is one filter-criteria set. Zero values mean no constraint.
// NumContrato, NomCredor and DscObjeto are case-insensitive substring
// patterns; the classification fields are exact matches; TipoDocumento is a
// comma-joined set of accepted document types.
type Filters struct {
	NumContrato    string `json:"num_contrato,omitempty"`
	NomCredor      string `json:"nom_credor,omitempty"`
	DscObjeto      string `json:"dsc_objeto_contrato,omitempty"`
	StatusVigencia string `json:"status_vigencia,omitempty"`
	Class1Setor    string `json:"class1_setor,omitempty"`
	NmSubacao      string `json:"nmSubacao,omitempty"`
	Classif1       string `json:"classif1,omitempty"`
	Classif2       string `json:"classif2,omitempty"`
	TipoDocumento  string `json:"tipo_documento,omitempty"`
}

// IsZero reports whether no criterion is active.
func (f Filters) IsZero() bool {
	return !anyActive(
		f.NumContrato, f.NomCredor, f.DscObjeto, f.StatusVigencia,
		f.Class1Setor, f.NmSubacao, f.Classif1, f.Classif2, f.TipoDocumento,
	)
}

func anyActive(values ...string) bool {
	for _, v := range values {
		if v != "" && v != FilterAll {
			return true
		}
	}
	return false
}

// Apply returns the subset of contracts satisfying every active criterion.
// Input order is preserved; the input slice is never modified.
func (f Filters) Apply(contracts []model.Contract) []model.Contract {
	result := make([]model.Contract, 0, len(contracts))
	for i := range contracts {
		if f.matches(&contracts[i]) {
			result = append(result, contracts[i])
		}
	}
	return result
}

func (f Filters) matches(c *model.Contract) bool {
	if !matchSubstring(c.NumContrato, f.NumContrato) {
		return false
	}
	if !matchSubstring(c.NomCredor, f.NomCredor) {
		return false
	}
	if !matchSubstring(c.DscObjetoContrato, f.DscObjeto) {
		return false
	}
	if !matchExact(c.StatusVigencia, f.StatusVigencia) {
		return false
	}
	if !matchExact(c.Class1Setor, f.Class1Setor) {
		return false
	}
	if !matchExact(c.NmSubacao, f.NmSubacao) {
		return false
	}
	if !matchExact(c.Classif1, f.Classif1) {
		return false
	}
	if !matchExact(c.Classif2, f.Classif2) {
		return false
	}
	if !matchSet(c.TipoDocumento(), f.TipoDocumento) {
		return false
	}
	return true
}

func matchSubstring(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func matchExact(value, criterion string) bool {
	if criterion == "" || criterion == FilterAll {
		return true
	}
	return value == criterion
}

// matchSet checks membership of value in a comma-joined criterion set.
func matchSet(value, criterion string) bool {
	if criterion == "" {
		return true
	}
	for _, part := range strings.Split(criterion, ",") {
		if strings.TrimSpace(part) == value {
			return true
		}
	}
	return false
}
