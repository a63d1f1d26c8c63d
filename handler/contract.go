package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
	"github.com/RobsonJunqueira/contrato-explorer-ui/service"
	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	collection *service.Collection
	editor     *service.Editor
	api        *service.ContractsAPI
}

func NewContractHandler(collection *service.Collection, editor *service.Editor, api *service.ContractsAPI) *ContractHandler {
	return &ContractHandler{
		collection: collection,
		editor:     editor,
		api:        api,
	}
}

// List runs the filter -> sort -> paginate pipeline over the held collection
// and returns one page of rows. All criteria come from query parameters; an
// out-of-range page is clamped rather than rejected.
func (h *ContractHandler) List(c *gin.Context) {
	filters := service.Filters{
		NumContrato:    c.Query("num_contrato"),
		NomCredor:      c.Query("nom_credor"),
		DscObjeto:      c.Query("dsc_objeto_contrato"),
		StatusVigencia: c.Query("status_vigencia"),
		Class1Setor:    c.Query("class1_setor"),
		NmSubacao:      c.Query("nmSubacao"),
		Classif1:       c.Query("classif1"),
		Classif2:       c.Query("classif2"),
		TipoDocumento:  c.Query("tipo_documento"),
	}

	sortField := service.ParseSortField(c.DefaultQuery("sort", string(service.SortNumContrato)))
	dir := c.DefaultQuery("dir", service.DirAsc)
	if dir != service.DirAsc && dir != service.DirDesc {
		dir = service.DirAsc
	}
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", service.DefaultPageSize)
	if pageSize <= 0 {
		pageSize = service.DefaultPageSize
	}

	filtered := filters.Apply(h.collection.All())
	sorted := service.SortContracts(filtered, sortField, dir)

	totalPages := service.TotalPages(len(sorted), pageSize)
	page = service.ClampPage(page, len(sorted), pageSize)
	rows := service.Paginate(sorted, page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"contracts":   rows,
		"total":       len(sorted),
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
		"fallback":    h.collection.Fallback(),
	})
}

// Get returns a single contract with its derived detail fields.
func (h *ContractHandler) Get(c *gin.Context) {
	id := c.Param("id")

	contract, ok := h.collection.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract":   contract,
		"urgency":    model.UrgencyFor(contract.DiasRestantes),
		"portal_url": contract.PortalURL(),
	})
}

// Options returns every dropdown option list, derived from the full
// unfiltered collection. The classif2 list is scoped to the classif1 query
// parameter when present.
func (h *ContractHandler) Options(c *gin.Context) {
	contracts := h.collection.All()
	classif1 := c.Query("classif1")

	c.JSON(http.StatusOK, gin.H{
		"status_vigencia": service.StatusOptions(contracts),
		"class1_setor":    service.SectorOptions(contracts),
		"class2_tipo":     service.TypeOptions(contracts),
		"nmSubacao":       service.SubacaoOptions(contracts),
		"classif1":        service.Classif1Options(contracts),
		"classif2":        service.Classif2Options(contracts, classif1),
		"tipo_documento":  service.TipoDocumentoOptions(contracts),
	})
}

// Update applies one or more editable field values to a single record.
func (h *ContractHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields provided"})
		return
	}

	fields := make(map[model.EditableField]string, len(body))
	for k, v := range body {
		f := model.EditableField(k)
		if !f.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field is not editable: " + k})
			return
		}
		fields[f] = v
	}

	updated, err := h.editor.Save(c.Request.Context(), id, fields)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownContract) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": updated})
}

type addOptionRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// AddOption writes a new value into one classification field. A blank value
// is a no-op, reported as saved=false.
func (h *ContractHandler) AddOption(c *gin.Context) {
	id := c.Param("id")

	var req addOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	field := model.EditableField(req.Field)
	if !field.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field is not editable: " + req.Field})
		return
	}

	saved, updated, err := h.editor.AddOption(c.Request.Context(), id, field, req.Value)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUnknownContract) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if !saved {
		c.JSON(http.StatusOK, gin.H{"saved": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true, "contract": updated})
}

// Refresh refetches the whole collection on demand. A failed fetch keeps the
// current collection.
func (h *ContractHandler) Refresh(c *gin.Context) {
	contracts, err := h.api.FetchAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	h.collection.ReplaceAll(contracts, false)

	c.JSON(http.StatusOK, gin.H{"contracts": len(contracts)})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
