// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package store defines the persistence interfaces consumed by the content
// engine. Two implementations exist: postgres (production) and memory
// (tests). Finder methods return (nil, nil) when no row matches; bulk
// delete methods report how many rows were removed.
package store

import (
	"context"

	"github.com/google/uuid"

	"rajkhabar/internal/models"
)

// CategoryStore manages the category collection.
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Count(ctx context.Context) (int, error)
}

// SubcategoryStore manages the subcategory collection. Slugs are unique per
// parent category, so the scoped FindBySlug takes the parent id; the
// FindFirstBySlug variant serves the legacy single-entity update/delete
// paths that address subcategories by slug alone.
type SubcategoryStore interface {
	Create(ctx context.Context, s *models.Subcategory) (*models.Subcategory, error)
	Update(ctx context.Context, s *models.Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error)
	FindBySlug(ctx context.Context, slug string, parentID uuid.UUID) (*models.Subcategory, error)
	FindFirstBySlug(ctx context.Context, slug string) (*models.Subcategory, error)
	List(ctx context.Context) ([]models.Subcategory, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]models.Subcategory, error)
	ListByStructureSlug(ctx context.Context, structureSlug string) ([]models.Subcategory, error)
	DeleteByParent(ctx context.Context, parentID uuid.UUID) (int64, error)
	CountByParent(ctx context.Context, parentID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
}

// TableStructureStore manages named column schemas.
type TableStructureStore interface {
	Create(ctx context.Context, t *models.TableStructure) (*models.TableStructure, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.TableStructure, error)
	FindBySlug(ctx context.Context, slug string) (*models.TableStructure, error)
	List(ctx context.Context) ([]models.TableStructure, error)
	Count(ctx context.Context) (int, error)
}

// PostFilter narrows post listings. Zero values mean "no constraint";
// Limit <= 0 falls back to the store default.
type PostFilter struct {
	Status          models.PostStatus
	Search          string
	CategoryID      uuid.UUID
	SubcategoryID   uuid.UUID
	CarouselVisible bool
	Limit           int
	Offset          int
}

// PostStore manages the post collection. Post slugs are globally unique.
// ListRecent returns only published posts, newest first; it feeds the
// public category overview.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	FindBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, f PostFilter) ([]models.Post, error)
	CountFiltered(ctx context.Context, f PostFilter) (int, error)
	ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Post, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status models.PostStatus) (int, error)
	Count(ctx context.Context) (int, error)
}

// CardStore manages the card collection. Card slugs are unique within their
// (category, subcategory) binding.
type CardStore interface {
	Create(ctx context.Context, c *models.Card) (*models.Card, error)
	Update(ctx context.Context, c *models.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Card, error)
	FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.Card, error)
	FindFirstBySlug(ctx context.Context, slug string) (*models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	ListByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) ([]models.Card, error)
	ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.Card, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int, error)
}

// TableRowStore manages tabular content rows.
type TableRowStore interface {
	Create(ctx context.Context, r *models.TableRow) (*models.TableRow, error)
	Update(ctx context.Context, r *models.TableRow) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.TableRow, error)
	FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.TableRow, error)
	FindFirstBySlug(ctx context.Context, slug string) (*models.TableRow, error)
	ListByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) ([]models.TableRow, error)
	ListByStructureSlug(ctx context.Context, structureSlug string) ([]models.TableRow, error)
	ListRecent(ctx context.Context, subcategoryIDs []uuid.UUID, limit int) ([]models.TableRow, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int, error)
}

// HeaderFilter narrows header component listings.
type HeaderFilter struct {
	CategorySlug    string
	SubcategorySlug string
	Search          string
	Limit           int
	Offset          int
}

// HeaderComponentStore manages table header components. FindByBinding backs
// the one-per-subcategory constraint check.
type HeaderComponentStore interface {
	Create(ctx context.Context, h *models.HeaderComponent) (*models.HeaderComponent, error)
	Update(ctx context.Context, h *models.HeaderComponent) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.HeaderComponent, error)
	FindBySlug(ctx context.Context, slug string, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error)
	FindByBinding(ctx context.Context, categoryID, subcategoryID uuid.UUID) (*models.HeaderComponent, error)
	List(ctx context.Context, f HeaderFilter) ([]models.HeaderComponent, error)
	CountFiltered(ctx context.Context, f HeaderFilter) (int, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	DeleteBySubcategory(ctx context.Context, subcategoryID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int, error)
}

// SocialLinkStore manages the flat social/policy link directory.
type SocialLinkStore interface {
	Create(ctx context.Context, l *models.SocialLink) (*models.SocialLink, error)
	Update(ctx context.Context, l *models.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SocialLink, error)
	FindBySlug(ctx context.Context, slug string) (*models.SocialLink, error)
	List(ctx context.Context) ([]models.SocialLink, error)
	Count(ctx context.Context) (int, error)
}

// DeviceStore manages the push-notification device registry.
type DeviceStore interface {
	Create(ctx context.Context, d *models.Device) (*models.Device, error)
	Update(ctx context.Context, d *models.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByDeviceID(ctx context.Context, deviceID string) (*models.Device, error)
	List(ctx context.Context) ([]models.Device, error)
	ListEnabledTokens(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// Stores bundles every collection store for injection into the service
// layer and the HTTP handlers.
type Stores struct {
	Categories      CategoryStore
	Subcategories   SubcategoryStore
	TableStructures TableStructureStore
	Posts           PostStore
	Cards           CardStore
	TableRows       TableRowStore
	Headers         HeaderComponentStore
	SocialLinks     SocialLinkStore
	Devices         DeviceStore
}
