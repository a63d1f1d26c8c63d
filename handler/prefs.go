package handler

import (
	"net/http"

	"github.com/RobsonJunqueira/contrato-explorer-ui/middleware"
	"github.com/RobsonJunqueira/contrato-explorer-ui/service"
	"github.com/gin-gonic/gin"
)

// PrefsHandler serves the persisted per-user view state (filters, sort,
// pagination) so it survives reloads across sessions.
type PrefsHandler struct {
	store *service.PrefsStore
}

func NewPrefsHandler(store *service.PrefsStore) *PrefsHandler {
	return &PrefsHandler{store: store}
}

// Get returns the stored preferences for the current user, defaulted when
// missing or malformed.
func (h *PrefsHandler) Get(c *gin.Context) {
	username := middleware.GetUsername(c)

	prefs, err := h.store.Load(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// Put stores the preferences for the current user. Values are normalized
// before persisting, so a malformed payload degrades to defaults rather than
// failing.
func (h *PrefsHandler) Put(c *gin.Context) {
	username := middleware.GetUsername(c)

	var prefs service.ViewPrefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	prefs.Normalize()
	if err := h.store.Save(username, prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
