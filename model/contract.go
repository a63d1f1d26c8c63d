package model

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Contract represents one row of the upstream "contratos" table, normalized
// for display. String fields are never left absent: a missing upstream value
// is always the empty string.
type Contract struct {
	ID          string `json:"id"`
	NumContrato string `json:"num_contrato"`

	DscResumo         string  `json:"dsc_resumo"`
	NomCredor         string  `json:"nom_credor"`
	NumCnpjCpf        string  `json:"num_cnpj_cpf"`
	DatInicio         string  `json:"dat_inicio"`
	DatFim            string  `json:"dat_fim"`
	ValGlobal         float64 `json:"val_global"`
	DiasRestantes     int     `json:"dias_restantes"`
	StatusVigencia    string  `json:"status_vigencia"`
	Observacoes       string  `json:"observacoes,omitempty"`
	DscObjetoContrato string  `json:"dsc_objeto_contrato,omitempty"`
	ContatoGestor     string  `json:"contato_gestor,omitempty"`
	DatPublicacao     string  `json:"dat_publicacao,omitempty"`

	CodTipoDocumentoLegal    string `json:"cod_tipo_documento_legal,omitempty"`
	DscTipoDocumentoLegal    string `json:"dsc_tipo_documento_legal,omitempty"`
	CodContratoClassificacao string `json:"cod_contrato_classificacao,omitempty"`
	NomContratoClassificacao string `json:"nom_contrato_classificacao,omitempty"`
	CodTipoContrato          string `json:"cod_tipo_contrato,omitempty"`
	DscTipoContrato          string `json:"dsc_tipo_contrato,omitempty"`
	CodModalidade            string `json:"cod_modalidade,omitempty"`
	NomModalidade            string `json:"nom_modalidade,omitempty"`
	NumEdital                string `json:"num_edital,omitempty"`
	DscEmailCredor           string `json:"dsc_email_credor,omitempty"`
	NomResponsavelPJCredor   string `json:"nom_responsavel_pj_credor,omitempty"`
	NomRepresentanteCredor   string `json:"nom_representante_credor,omitempty"`
	CodSituacaoContrato      string `json:"cod_situacao_contrato,omitempty"`
	DscSituacaoContrato      string `json:"dsc_situacao_contrato,omitempty"`
	NumDocumentoLegal        string `json:"num_documento_legal,omitempty"`
	NumProcesso              string `json:"num_processo,omitempty"`
	CodUnidadeGestora        string `json:"cod_unidade_gestora,omitempty"`

	// Budgetary program hierarchy, sourced from the aux_subacao reference table.
	CodSubacao string `json:"cod_subacao,omitempty"`
	NmSubacao  string `json:"nmSubacao,omitempty"`
	NmPrograma string `json:"nmPrograma,omitempty"`

	// Client-editable reference fields. Only these may be written back.
	LinkProcesso            string `json:"link_processo,omitempty"`
	LinkProcessoProvidencia string `json:"link_processo_providencia,omitempty"`
	ProcessoProvidencia     string `json:"processo_providencia,omitempty"`
	Class1Setor             string `json:"class1_setor,omitempty"`
	Class2Tipo              string `json:"class2_tipo,omitempty"`
	Classif1                string `json:"classif1,omitempty"`
	Classif2                string `json:"classif2,omitempty"`

	ValContratoOriginal           float64 `json:"val_contrato_original,omitempty"`
	ValContratoOriginalAtualizado float64 `json:"val_contrato_original_atualizado,omitempty"`
	DatCarga                      string  `json:"dat_carga,omitempty"`
	DatAtual                      string  `json:"dat_atual,omitempty"`
	DatAssinatura                 string  `json:"dat_assinatura,omitempty"`
	DatFimVigenciaAtual           string  `json:"dat_fim_vigencia_atual,omitempty"`
}

// Vigency status constants
const (
	StatusVigente   = "VIGENTE"
	StatusEncerrado = "ENCERRADO"
)

// EditableField enumerates the contract fields a client may write.
type EditableField string

const (
	FieldLinkProcesso            EditableField = "link_processo"
	FieldLinkProcessoProvidencia EditableField = "link_processo_providencia"
	FieldProcessoProvidencia     EditableField = "processo_providencia"
	FieldClass1Setor             EditableField = "class1_setor"
	FieldClass2Tipo              EditableField = "class2_tipo"
	FieldClassif1                EditableField = "classif1"
	FieldClassif2                EditableField = "classif2"
)

// EditableFields returns the full editable set in a stable order.
func EditableFields() []EditableField {
	return []EditableField{
		FieldLinkProcesso,
		FieldLinkProcessoProvidencia,
		FieldProcessoProvidencia,
		FieldClass1Setor,
		FieldClass2Tipo,
		FieldClassif1,
		FieldClassif2,
	}
}

// Valid reports whether f names a client-editable field.
func (f EditableField) Valid() bool {
	switch f {
	case FieldLinkProcesso, FieldLinkProcessoProvidencia, FieldProcessoProvidencia,
		FieldClass1Setor, FieldClass2Tipo, FieldClassif1, FieldClassif2:
		return true
	}
	return false
}

// SetField writes value into the editable field f. Fields outside the
// editable set are rejected; descriptive fields are never writable here.
func (c *Contract) SetField(f EditableField, value string) error {
	switch f {
	case FieldLinkProcesso:
		c.LinkProcesso = value
	case FieldLinkProcessoProvidencia:
		c.LinkProcessoProvidencia = value
	case FieldProcessoProvidencia:
		c.ProcessoProvidencia = value
	case FieldClass1Setor:
		c.Class1Setor = value
	case FieldClass2Tipo:
		c.Class2Tipo = value
	case FieldClassif1:
		c.Classif1 = value
	case FieldClassif2:
		c.Classif2 = value
	default:
		return fmt.Errorf("field %q is not editable", string(f))
	}
	return nil
}

// GetField reads the current value of an editable field.
func (c *Contract) GetField(f EditableField) string {
	switch f {
	case FieldLinkProcesso:
		return c.LinkProcesso
	case FieldLinkProcessoProvidencia:
		return c.LinkProcessoProvidencia
	case FieldProcessoProvidencia:
		return c.ProcessoProvidencia
	case FieldClass1Setor:
		return c.Class1Setor
	case FieldClass2Tipo:
		return c.Class2Tipo
	case FieldClassif1:
		return c.Classif1
	case FieldClassif2:
		return c.Classif2
	}
	return ""
}

// TipoDocumento returns the document type as shown to users: the descriptive
// name when present, otherwise the raw code.
func (c *Contract) TipoDocumento() string {
	if c.DscTipoDocumentoLegal != "" {
		return c.DscTipoDocumentoLegal
	}
	return c.CodTipoDocumentoLegal
}

// Urgency bands for remaining days.
const (
	UrgencyUrgent  = "urgent"  // fewer than 30 days
	UrgencyWarning = "warning" // fewer than 90 days
	UrgencyNormal  = "normal"
)

// UrgencyFor bands a remaining-days count.
func UrgencyFor(days int) string {
	switch {
	case days < 30:
		return UrgencyUrgent
	case days < 90:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

// StatusFromActive maps the upstream boolean vigency flag to its display string.
func StatusFromActive(active bool) string {
	if active {
		return StatusVigente
	}
	return StatusEncerrado
}

// ActiveFromStatus translates a display status back to the upstream boolean.
// Anything other than VIGENTE is treated as concluded.
func ActiveFromStatus(status string) bool {
	return status == StatusVigente
}

// PortalURL builds the transparency portal extract link for this contract.
// The parameter names must match the portal's expected query string exactly.
func (c *Contract) PortalURL() string {
	q := url.Values{}
	q.Set("nucontratofiltro[]", c.NumContrato)
	q.Set("unidadegestorafiltro[]", c.CodUnidadeGestora)
	q.Set("gestaofiltro[]", "1")
	return "https://www.transparencia.sc.gov.br/contratos/extratosigef?" + q.Encode()
}

// ContractFromRow normalizes one positional row from the reporting endpoint.
// Columns follow the upstream question layout: num_contrato, dsc_resumo,
// nom_credor, num_cnpj_cpf, dat_inicio, dat_fim, val_global, dias_restantes,
// status_vigencia, observacoes, dsc_objeto_contrato, contato_gestor,
// dat_publicacao.
func ContractFromRow(row []any, index int) Contract {
	c := Contract{
		NumContrato:       colString(row, 0),
		DscResumo:         colString(row, 1),
		NomCredor:         colString(row, 2),
		NumCnpjCpf:        colString(row, 3),
		DatInicio:         colString(row, 4),
		DatFim:            colString(row, 5),
		ValGlobal:         colFloat(row, 6),
		DiasRestantes:     colInt(row, 7),
		StatusVigencia:    colStatus(row, 8),
		Observacoes:       colString(row, 9),
		DscObjetoContrato: colString(row, 10),
		ContatoGestor:     colString(row, 11),
		DatPublicacao:     colString(row, 12),
	}
	c.ID = fmt.Sprintf("%d-%s", index, c.NumContrato)
	return c
}

func colString(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// colFloat parses a numeric column with a safe fallback of 0.
func colFloat(row []any, i int) float64 {
	if i >= len(row) || row[i] == nil {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func colInt(row []any, i int) int {
	return int(colFloat(row, i))
}

// colStatus maps the upstream vigency column, which historically arrived
// either as a boolean flag or as an already-formatted status string.
func colStatus(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	switch v := row[i].(type) {
	case bool:
		return StatusFromActive(v)
	case string:
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case StatusVigente, "TRUE":
			return StatusVigente
		case StatusEncerrado, "FALSE":
			return StatusEncerrado
		}
		return strings.ToUpper(strings.TrimSpace(v))
	}
	return ""
}
