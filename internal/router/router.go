// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Raj Khabar API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"

	"rajkhabar/internal/httpapi"
	"rajkhabar/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. Admin routes require a valid JWT.
func New(h *httpapi.Handler, tokenAuth *jwtauth.JWTAuth) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.NewRateLimiter(300, time.Minute).Middleware)

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes, consumed by the mobile app.
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/tree", h.CategoryTree)
		r.Get("/categories/{categorySlug}/overview", h.CategoryOverview)
		r.Get("/categories/{categorySlug}/subcategories", h.ListSubcategories)

		r.Get("/posts", h.ListPosts)
		r.Get("/posts/search", h.SearchPosts)
		r.Get("/posts/{postSlug}", h.GetPost)
		r.Get("/categories/{categorySlug}/{subCategorySlug}/posts", h.ListPostsByBinding)

		r.Get("/cards", h.ListCards)
		r.Get("/cards/{cardSlug}", h.GetCard)
		r.Get("/categories/{categorySlug}/{subCategorySlug}/cards", h.ListCardsByBinding)

		r.Get("/table-structures", h.ListTableStructures)
		r.Get("/table-structures/{structureSlug}", h.GetTableStructure)
		r.Get("/table-posts/{rowSlug}", h.GetTableRow)
		r.Get("/categories/{categorySlug}/{subCategorySlug}/table-posts", h.ListTableRowsByBinding)

		r.Get("/categories/{categorySlug}/{subCategorySlug}/header", h.GetHeaderComponent)

		r.Get("/social-links", h.ListSocialLinks)

		// Device registration is open; the app calls it on first launch.
		r.Post("/devices", h.RegisterDevice)
		r.Put("/devices/{deviceId}/notifications", h.SetDeviceNotifications)
		r.Delete("/devices/{deviceId}", h.UnregisterDevice)

		// Admin routes cover every mutation of content and taxonomy.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokenAuth))

			r.Post("/categories", h.CreateCategory)
			r.Put("/categories/{categorySlug}", h.UpdateCategory)
			r.Delete("/categories/{categorySlug}", h.DeleteCategory)

			r.Post("/subcategories", h.CreateSubcategory)
			r.Put("/subcategories/{subCategorySlug}", h.UpdateSubcategory)
			r.Delete("/subcategories/{subCategorySlug}", h.DeleteSubcategory)

			r.Post("/posts", h.CreatePost)
			r.Put("/posts/{postSlug}", h.UpdatePost)
			r.Delete("/posts/{postSlug}", h.DeletePost)

			r.Post("/cards", h.CreateCard)
			r.Put("/cards/{cardSlug}", h.UpdateCard)
			r.Delete("/categories/{categorySlug}/{subCategorySlug}/cards/{cardSlug}", h.DeleteCard)

			r.Post("/table-structures", h.CreateTableStructure)
			r.Post("/table-posts", h.CreateTableRow)
			r.Put("/table-posts/{rowSlug}", h.UpdateTableRow)
			r.Delete("/table-posts/{rowSlug}", h.DeleteTableRow)

			r.Get("/header-components", h.ListHeaderComponents)
			r.Post("/header-components", h.CreateHeaderComponent)
			r.Put("/categories/{categorySlug}/{subCategorySlug}/header/{headerSlug}", h.UpdateHeaderComponent)
			r.Delete("/categories/{categorySlug}/{subCategorySlug}/header/{headerSlug}", h.DeleteHeaderComponent)

			r.Post("/social-links", h.CreateSocialLink)
			r.Put("/social-links/{linkSlug}", h.UpdateSocialLink)
			r.Delete("/social-links/{linkSlug}", h.DeleteSocialLink)

			r.Post("/bulk-delete/{contentType}", h.BulkDelete)

			r.Get("/stats", h.GetStatistics)
			r.Get("/devices", h.ListDevices)
			r.Post("/notifications/broadcast", h.Broadcast)

			r.Route("/media", func(r chi.Router) {
				r.Get("/", h.ListMedia)
				r.Post("/", h.UploadMedia)
				r.Put("/", h.ReplaceMedia)
				r.Delete("/", h.DeleteMedia)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
