package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-negocios/internal/middleware"
	"github.com/BruksfildServices01/agenda-negocios/internal/models"
)

// ======================================================
// PATH / BODY
// ======================================================

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_body", "Corpo da requisição inválido: "+err.Error())
		return false
	}
	return true
}

// currentUserID is the authenticated user, or nil on public routes.
func currentUserID(c *gin.Context) *uint {
	if id, ok := middleware.UserID(c); ok {
		return &id
	}
	return nil
}

// ======================================================
// QUERY
// ======================================================

// filter maps a query parameter onto an equality condition.
type filter struct {
	param  string
	column string
	parse  func(string) (any, bool)
}

func uintFilter(param string) filter {
	return filter{param: param, column: param, parse: func(v string) (any, bool) {
		n, err := strconv.ParseUint(v, 10, 64)
		return uint(n), err == nil
	}}
}

func boolFilter(param string) filter {
	return filter{param: param, column: param, parse: func(v string) (any, bool) {
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}}
}

// upperFilter matches enum-like columns stored in upper case.
func upperFilter(param string) filter {
	return filter{param: param, column: param, parse: func(v string) (any, bool) {
		return strings.ToUpper(v), true
	}}
}

func digitsFilter(param string) filter {
	return filter{param: param, column: param, parse: func(v string) (any, bool) {
		d := models.NormalizeDigits(v)
		return d, d != ""
	}}
}

// listParams reads page, limit, query and the allowed filters. Unparseable
// values are rejected instead of silently ignored.
func listParams(c *gin.Context, filters []filter) (repository.ListParams, bool) {
	params := repository.ListParams{
		Search:  c.Query("query"),
		Filters: map[string]any{},
	}

	var err error
	if v := c.Query("page"); v != "" {
		if params.Page, err = strconv.Atoi(v); err != nil {
			httperr.BadRequest(c, "invalid_page", "Parâmetro page inválido.")
			return params, false
		}
	}
	if v := c.Query("limit"); v != "" {
		if params.Limit, err = strconv.Atoi(v); err != nil {
			httperr.BadRequest(c, "invalid_limit", "Parâmetro limit inválido.")
			return params, false
		}
	}

	for _, f := range filters {
		raw := strings.TrimSpace(c.Query(f.param))
		if raw == "" {
			continue
		}
		v, ok := f.parse(raw)
		if !ok {
			httperr.BadRequest(c, "invalid_filter", "Filtro inválido: "+f.param+".")
			return params, false
		}
		params.Filters[f.column] = v
	}
	return params, true
}

// optionalUintQuery parses an optional numeric query parameter.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_filter", "Filtro inválido: "+name+".")
		return nil, false
	}
	id := uint(n)
	return &id, true
}
