package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List: ?business_id&action&entity&entity_id&from=AAAA-MM-DD&to=AAAA-MM-DD&page&limit,
// newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	params, ok := listParams(c, []filter{
		uintFilter("business_id"),
		uintFilter("user_id"),
		uintFilter("entity_id"),
		{param: "action", column: "action", parse: func(v string) (any, bool) { return v, true }},
		{param: "entity", column: "entity", parse: func(v string) (any, bool) { return v, true }},
	})
	if !ok {
		return
	}
	params = params.Normalized()

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})
	if len(params.Filters) > 0 {
		q = q.Where(params.Filters)
	}

	// --------------------------------------------------
	// Período (datas inclusivas)
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.DateOnly, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.DateOnly, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data final inválida.")
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total + página
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, logs, total, params.Page, params.Limit)
}
