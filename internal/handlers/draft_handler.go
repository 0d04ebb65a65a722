package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"archbudget/internal/engine"
	"archbudget/internal/responses"
	"archbudget/internal/services"
)

type DraftHandler struct {
	draftService *services.DraftService
}

func NewDraftHandler(draftService *services.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Save handles PUT /api/v1/draft, storing the in-progress calculator state
// so a reload within 24h can restore it.
func (h *DraftHandler) Save(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	var snapshot engine.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid draft data")
		return
	}

	draft, err := h.draftService.SaveDraft(userID.String(), snapshot)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to save draft")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Draft saved")
}

// Get handles GET /api/v1/draft
func (h *DraftHandler) Get(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	draft, err := h.draftService.GetDraft(userID.String())
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "No draft to restore")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve draft")
		return
	}

	responses.Success(c, http.StatusOK, draft, "Draft retrieved")
}

// Delete handles DELETE /api/v1/draft
func (h *DraftHandler) Delete(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	if err := h.draftService.DeleteDraft(userID.String()); err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to discard draft")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Draft discarded")
}
