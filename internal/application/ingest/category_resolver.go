package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/catalog"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/entity"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/domain/repository"
)

// CategoryCache caché de categorías de una corrida, por nombre en mayúsculas y por slug.
// Se carga una vez al inicio y se pasa por referencia; no es global ni segura entre goroutines.
type CategoryCache struct {
	byName map[string]*entity.Category
	bySlug map[string]*entity.Category
}

// NewCategoryCache indexa las categorías existentes.
func NewCategoryCache(categories []*entity.Category) *CategoryCache {
	c := &CategoryCache{
		byName: make(map[string]*entity.Category, len(categories)),
		bySlug: make(map[string]*entity.Category, len(categories)),
	}
	for _, cat := range categories {
		c.Put(cat)
	}
	return c
}

// Put agrega o reemplaza una categoría.
func (c *CategoryCache) Put(cat *entity.Category) {
	c.byName[categoryKey(cat.Name)] = cat
	c.bySlug[cat.Slug] = cat
}

// ByName búsqueda sin distinguir mayúsculas.
func (c *CategoryCache) ByName(name string) (*entity.Category, bool) {
	cat, ok := c.byName[categoryKey(name)]
	return cat, ok
}

// SlugTaken indica si el slug ya está en uso.
func (c *CategoryCache) SlugTaken(s string) bool {
	_, ok := c.bySlug[s]
	return ok
}

// Len cantidad de categorías en caché.
func (c *CategoryCache) Len() int { return len(c.byName) }

func categoryKey(name string) string {
	return catalog.Upper(catalog.CollapseSpaces(name))
}

type resolverStats struct {
	created    int
	reparented int
}

// CategoryResolver asegura la taxonomía en BD y resuelve la categoría hoja de cada producto.
type CategoryResolver struct {
	repo        repository.CategoryRepository
	cache       *CategoryCache
	taxonomy    *catalog.Taxonomy
	adoptParent bool
	stats       *resolverStats
	log         zerolog.Logger
	now         func() time.Time
}

// NewCategoryResolver construye el resolvedor. Con adoptParent=true una categoría existente
// pasa al padre pedido (gana el último); con false se conserva el padre actual.
func NewCategoryResolver(
	repo repository.CategoryRepository,
	cache *CategoryCache,
	taxonomy *catalog.Taxonomy,
	adoptParent bool,
	log zerolog.Logger,
) *CategoryResolver {
	return &CategoryResolver{
		repo:        repo,
		cache:       cache,
		taxonomy:    taxonomy,
		adoptParent: adoptParent,
		stats:       &resolverStats{},
		log:         log,
		now:         time.Now,
	}
}

// WithRepository devuelve un resolvedor que escribe con otro repositorio (p. ej. atado a una tx)
// compartiendo caché y contadores.
func (r *CategoryResolver) WithRepository(repo repository.CategoryRepository) *CategoryResolver {
	cp := *r
	cp.repo = repo
	return &cp
}

// Created categorías creadas en la corrida.
func (r *CategoryResolver) Created() int { return r.stats.created }

// Reparented categorías que cambiaron de padre en la corrida.
func (r *CategoryResolver) Reparented() int { return r.stats.reparented }

// EnsureCategory devuelve la categoría con ese nombre, creándola si no existe.
// El slug sale de slugHint o del nombre; si choca se agrega -2, -3, ... hasta que sea único.
func (r *CategoryResolver) EnsureCategory(ctx context.Context, name, slugHint string, parentID *string) (*entity.Category, error) {
	key := categoryKey(name)
	if key == "" {
		return nil, fmt.Errorf("ensure category: %w", domain.ErrInvalidInput)
	}
	if cat, ok := r.cache.ByName(key); ok {
		if err := r.adopt(ctx, cat, parentID); err != nil {
			return nil, err
		}
		return cat, nil
	}

	base := slugHint
	if base == "" {
		base = slug.Make(key)
	}
	if base == "" {
		base = "category"
	}
	candidate := base
	for n := 2; r.cache.SlugTaken(candidate); n++ {
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	now := r.now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      key,
		Slug:      candidate,
		ParentID:  copyID(parentID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.repo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("create category %q: %w", key, err)
	}
	r.cache.Put(cat)
	r.stats.created++
	r.log.Debug().Str("category", cat.Name).Str("slug", cat.Slug).Msg("categoría creada")
	return cat, nil
}

func (r *CategoryResolver) adopt(ctx context.Context, cat *entity.Category, parentID *string) error {
	if cat.SameParent(parentID) || (parentID != nil && *parentID == cat.ID) {
		return nil
	}
	if !r.adoptParent {
		r.log.Warn().Str("category", cat.Name).Str("from", idOrRoot(cat.ParentID)).Str("to", idOrRoot(parentID)).
			Msg("conflicto de padre: se conserva el actual")
		return nil
	}
	if err := r.repo.UpdateParent(ctx, cat.ID, parentID); err != nil {
		return fmt.Errorf("reparent category %q: %w", cat.Name, err)
	}
	r.log.Warn().Str("category", cat.Name).Str("from", idOrRoot(cat.ParentID)).Str("to", idOrRoot(parentID)).
		Msg("categoría reasignada a otro padre")
	cat.ParentID = copyID(parentID)
	cat.UpdatedAt = r.now()
	r.stats.reparented++
	return nil
}

// EnsureParentCategories materializa las categorías padre fijas (parent_id NULL). Idempotente.
func (r *CategoryResolver) EnsureParentCategories(ctx context.Context) error {
	for _, p := range r.taxonomy.Parents {
		if _, err := r.EnsureCategory(ctx, p.Name, p.Slug, nil); err != nil {
			return err
		}
	}
	return nil
}

// InferSubcategory regla de subcategoría para el producto bajo el padre dado.
func (r *CategoryResolver) InferSubcategory(productName, parentName string) (catalog.SubcategoryRule, bool) {
	return r.taxonomy.InferSubcategory(productName, parentName)
}

// ResolveLeaf resuelve la etiqueta del proveedor y el nombre del producto a una categoría hoja:
// la subcategoría inferida o, sin regla que coincida, el padre.
func (r *CategoryResolver) ResolveLeaf(ctx context.Context, rawCategory, productName string) (string, error) {
	parentName, known := r.taxonomy.ParentFor(rawCategory)

	var parent *entity.Category
	if cat, ok := r.cache.ByName(parentName); ok && !known {
		// etiqueta desconocida que ya existe: se usa tal cual, sin moverla de padre
		parent = cat
	} else {
		var err error
		parent, err = r.EnsureCategory(ctx, parentName, r.taxonomy.ParentSlug(parentName), nil)
		if err != nil {
			return "", err
		}
	}

	rule, ok := r.InferSubcategory(productName, parent.Name)
	if !ok {
		return parent.ID, nil
	}
	sub, err := r.EnsureCategory(ctx, rule.Name, rule.Slug, &parent.ID)
	if err != nil {
		return "", err
	}
	return sub.ID, nil
}

func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func idOrRoot(id *string) string {
	if id == nil {
		return "root"
	}
	return *id
}
