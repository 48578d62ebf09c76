package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-negocios/internal/audit"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
	"github.com/BruksfildServices01/agenda-negocios/internal/httpresp"
	"github.com/BruksfildServices01/agenda-negocios/internal/infra/repository"
)

// resource is the list/get/create/update/delete plumbing shared by the entity
// handlers. Every write is audited under "<entity>_<verb>".
type resource[T any] struct {
	repo    *repository.CrudGormRepository[T]
	audit   audit.Recorder
	entity  string
	filters []filter

	idOf       func(*T) uint
	businessOf func(*T) *uint
}

func (r *resource[T]) list(c *gin.Context) {
	params, ok := listParams(c, r.filters)
	if !ok {
		return
	}
	page, err := r.repo.List(c.Request.Context(), params)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Page(c, page.Items, page.Total, page.Page, page.Limit)
}

// load resolves :id, writing the error response when it fails.
func (r *resource[T]) load(c *gin.Context) (*T, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	v, err := r.repo.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return nil, false
	}
	return v, true
}

func (r *resource[T]) get(c *gin.Context) {
	if v, ok := r.load(c); ok {
		httpresp.OK(c, v)
	}
}

func (r *resource[T]) create(c *gin.Context, v *T) {
	if err := r.repo.Create(c.Request.Context(), v); err != nil {
		httperr.FromError(c, err)
		return
	}
	r.record(c, "created", v)
	httpresp.Created(c, v)
}

func (r *resource[T]) save(c *gin.Context, v *T) {
	if err := r.repo.Update(c.Request.Context(), v); err != nil {
		httperr.FromError(c, err)
		return
	}
	r.record(c, "updated", v)
	httpresp.OK(c, v)
}

func (r *resource[T]) delete(c *gin.Context) {
	v, ok := r.load(c)
	if !ok {
		return
	}
	if err := r.repo.Delete(c.Request.Context(), r.idOf(v)); err != nil {
		httperr.FromError(c, err)
		return
	}
	r.record(c, "deleted", v)
	httpresp.NoContent(c)
}

func (r *resource[T]) record(c *gin.Context, verb string, v *T) {
	id := r.idOf(v)
	r.audit.Record(c.Request.Context(), audit.Event{
		BusinessID: r.businessOf(v),
		UserID:     currentUserID(c),
		Action:     r.entity + "_" + verb,
		Entity:     r.entity,
		EntityID:   &id,
	})
}
