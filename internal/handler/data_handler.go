package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/service"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

const resetTokenHeader = "X-Reset-Token"

// DataHandler exposes backup, restore, reset and settings endpoints.
type DataHandler struct {
	data *service.DataService
}

// NewDataHandler constructs DataHandler.
func NewDataHandler(data *service.DataService) *DataHandler {
	return &DataHandler{data: data}
}

// Export godoc
// @Summary Download a full backup
// @Tags Data
// @Produce json
// @Success 200 {object} models.Snapshot
// @Router /data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	snapshot := h.data.Export()
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode backup"))
		return
	}
	filename := fmt.Sprintf("myclassprogress-backup-%s.json", time.Now().Format("2006-01-02"))
	response.File(c, filename, "application/json", payload)
}

// Import godoc
// @Summary Restore a backup; absent collections are left untouched
// @Tags Data
// @Accept json
// @Param payload body models.ImportPayload true "Backup file contents"
// @Success 204
// @Router /data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	var payload models.ImportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid backup file"))
		return
	}
	if err := h.data.Import(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RequestReset godoc
// @Summary Start a reset to the demo data set
// @Description Returns a short-lived token that must be sent to /data/reset/confirm.
// @Tags Data
// @Produce json
// @Success 202 {object} response.Envelope
// @Router /data/reset [post]
func (h *DataHandler) RequestReset(c *gin.Context) {
	ticket, err := h.data.RequestReset()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, ticket)
}

// ConfirmReset godoc
// @Summary Wipe all data back to the demo data set
// @Tags Data
// @Accept json
// @Param payload body service.ResetConfirmRequest false "Token (or X-Reset-Token header)"
// @Success 204
// @Failure 412 {object} response.Envelope
// @Router /data/reset/confirm [post]
func (h *DataHandler) ConfirmReset(c *gin.Context) {
	var req service.ResetConfirmRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}
	if req.Token == "" {
		req.Token = c.GetHeader(resetTokenHeader)
	}
	if err := h.data.ConfirmReset(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Save godoc
// @Summary Retry writing every key to the backend
// @Tags Data
// @Success 204
// @Failure 507 {object} response.Envelope
// @Router /data/save [post]
func (h *DataHandler) Save(c *gin.Context) {
	if err := h.data.Save(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Settings godoc
// @Summary School settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *DataHandler) Settings(c *gin.Context) {
	response.OK(c, h.data.Settings())
}

// UpdateSettings godoc
// @Summary Patch school settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.SettingsPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /settings [patch]
func (h *DataHandler) UpdateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	settings, err := h.data.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, settings)
}
