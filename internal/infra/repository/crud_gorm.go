package repository

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type ListParams struct {
	Page  int
	Limit int
	// coluna -> valor, sempre vindos de uma lista fechada no handler
	Filters map[string]any
	// busca parcial, sem diferenciar maiúsculas, nas SearchColumns
	Search string
}

// Normalized applies the default page and limit and caps the limit.
func (p ListParams) Normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

type Options struct {
	Order         string
	Preload       []string
	Conflict      string
	SearchColumns []string
}

// CrudGormRepository is the plain list/get/create/update/delete store shared
// by every entity. Writes never cascade into associations.
type CrudGormRepository[T any] struct {
	db   *gorm.DB
	opts Options
}

func NewCrudGormRepository[T any](db *gorm.DB, opts Options) *CrudGormRepository[T] {
	if opts.Order == "" {
		opts.Order = "id ASC"
	}
	if opts.Conflict == "" {
		opts.Conflict = "Já existe um registro com esses dados."
	}
	return &CrudGormRepository[T]{db: db, opts: opts}
}

func (r *CrudGormRepository[T]) scoped(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.opts.Preload {
		q = q.Preload(p)
	}
	return q
}

func (r *CrudGormRepository[T]) List(ctx context.Context, params ListParams) (Page[T], error) {
	params = params.Normalized()
	page := Page[T]{Items: []T{}, Page: params.Page, Limit: params.Limit}

	q := r.db.WithContext(ctx).Model(new(T))
	keys := make([]string, 0, len(params.Filters))
	for k := range params.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q = q.Where(clause.Eq{Column: clause.Column{Name: k}, Value: params.Filters[k]})
	}

	if term := strings.ToLower(strings.TrimSpace(params.Search)); term != "" && len(r.opts.SearchColumns) > 0 {
		like := "%" + term + "%"
		parts := make([]string, len(r.opts.SearchColumns))
		args := make([]any, len(r.opts.SearchColumns))
		for i, col := range r.opts.SearchColumns {
			parts[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}
		q = q.Where(strings.Join(parts, " OR "), args...)
	}

	if err := q.Count(&page.Total).Error; err != nil {
		return page, err
	}
	if page.Total == 0 {
		return page, nil
	}

	q = q.Order(r.opts.Order).Offset((params.Page - 1) * params.Limit).Limit(params.Limit)
	for _, p := range r.opts.Preload {
		q = q.Preload(p)
	}
	if err := q.Find(&page.Items).Error; err != nil {
		return page, err
	}
	return page, nil
}

func (r *CrudGormRepository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.scoped(ctx).First(&v, id).Error; err != nil {
		return nil, translate(err, r.opts.Conflict)
	}
	return &v, nil
}

func (r *CrudGormRepository[T]) Create(ctx context.Context, v *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
	return translate(err, r.opts.Conflict)
}

func (r *CrudGormRepository[T]) Update(ctx context.Context, v *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
	return translate(err, r.opts.Conflict)
}

func (r *CrudGormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error, r.opts.Conflict)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
