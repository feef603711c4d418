package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gamesrank/backend/internal/models"
	"gamesrank/backend/internal/stats"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildReport loads everything the statistics need and aggregates it.
func (h *Handler) buildReport(ctx context.Context) (stats.Report, error) {
	rankings, err := h.Rankings.List(ctx)
	if err != nil {
		return stats.Report{}, fmt.Errorf("list rankings: %w", err)
	}
	ratings, err := h.Ratings.List(ctx)
	if err != nil {
		return stats.Report{}, fmt.Errorf("list ratings: %w", err)
	}
	categories, err := h.Categories.List(ctx)
	if err != nil {
		return stats.Report{}, fmt.Errorf("list categories: %w", err)
	}

	seen := map[int]bool{}
	var ids []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, r := range ratings {
		add(r.GameID)
	}
	for _, c := range categories {
		for _, id := range c.Games {
			add(id)
		}
	}

	games := map[int]models.Game{}
	if len(ids) > 0 {
		found, err := h.Games.FindByBGGIDs(ctx, ids)
		if err != nil {
			return stats.Report{}, fmt.Errorf("load games: %w", err)
		}
		for _, g := range found {
			games[g.BGGID] = g
		}
	}

	return stats.Compute(stats.Input{
		Rankings:   rankings,
		Ratings:    ratings,
		Games:      games,
		Categories: categories,
	}), nil
}

// GetStats godoc
// @Summary      Global statistics
// @Description  Aggregates every ranking and rating: global standings, votes per game and per-category figures.
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} stats.Report
// @Router       /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	report, err := h.buildReport(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to compute statistics", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetStatsChart godoc
// @Summary      Top rated games chart
// @Description  Renders a PNG bar chart of the ten games with the best average stars.
// @Tags         stats
// @Produce      png
// @Security     BearerAuth
// @Success      200 {file} binary
// @Router       /stats/chart.png [get]
func (h *Handler) GetStatsChart(c *gin.Context) {
	report, err := h.buildReport(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to compute statistics", err)
		return
	}
	png, err := stats.RenderVotesChart(report)
	if err != nil {
		h.internalError(c, "Failed to render chart", err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// ExportStats godoc
// @Summary      Export statistics
// @Description  Downloads the statistics as an XLSX workbook with Ranking, Votes and Categories sheets.
// @Tags         admin-stats
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200 {file} binary
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/stats/export [get]
func (h *Handler) ExportStats(c *gin.Context) {
	report, err := h.buildReport(c.Request.Context())
	if err != nil {
		h.internalError(c, "Failed to compute statistics", err)
		return
	}
	data, err := stats.ExportXLSX(report)
	if err != nil {
		h.internalError(c, "Failed to export statistics", err)
		return
	}

	filename := fmt.Sprintf("gamesrank-stats-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
