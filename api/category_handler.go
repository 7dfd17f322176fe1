package api

import (
	"net/http"
	"sync"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type categoryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
}

func newCategoryHandler(projectRepo projectStore, notifyURL string) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:   NewResponder(logger).WithNotifyURL(notifyURL),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getCategories lists the category filter bar with project counts
// @Summary List categories
// @Description "All" first, then every category in display order; names follow the lang parameter
// @Tags Categories
// @Produce json
// @Param lang query string false "Display locale (ru, en)"
// @Success 200 {object} CategoryListResponse
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error counting projects"
// @Router /api/categories [get]
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			total  int64
			mu     sync.Mutex
			counts = make(map[models.Category]int64, len(models.Categories()))
		)

		// one unfiltered count plus one per category
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n, err := h.projectRepo.Count(gctx, database.ProjectFilter{})
			if err != nil {
				return err
			}
			total = n
			return nil
		})
		for _, category := range models.Categories() {
			category := category
			g.Go(func() error {
				n, err := h.projectRepo.Count(gctx, database.ProjectFilter{Category: category})
				if err != nil {
					return err
				}
				mu.Lock()
				counts[category] = n
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("count", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, CategoryListResponse{
			Categories: newCategoryCounts(ctxGetLocale(ctx), total, counts),
		})
	}
}
