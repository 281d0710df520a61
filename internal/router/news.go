package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mohammed-danyal/brainrot-news/internal/apperr"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/feed"
	"github.com/mohammed-danyal/brainrot-news/internal/storage"
)

// FeedLister is the read side the news routes depend on.
type FeedLister interface {
	List(ctx context.Context, limit int) ([]domain.Article, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type NewsRouter struct {
	e    *echo.Echo
	feed FeedLister
}

func NewNewsRouter(e *echo.Echo, feed FeedLister) *NewsRouter {
	return &NewsRouter{
		e:    e,
		feed: feed,
	}
}

func (r *NewsRouter) Bind() {
	g := r.e.Group("/api")
	g.GET("/news", r.listHandler)
}

// listHandler returns the latest stylized articles
// @Summary List latest articles
// @Description Newest articles first, at most 100
// @Tags news
// @Produce json
// @Param limit query int false "max number of articles (1-100)"
// @Success 200 {array} domain.Article
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/news [get]
func (r *NewsRouter) listHandler(c echo.Context) error {
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return err
	}

	articles, err := r.feed.List(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, storage.ErrStorageUnavailable) {
			slog.Error("Feed storage unavailable", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "news feed temporarily unavailable")
		}
		return err
	}

	return c.JSON(http.StatusOK, articles)
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return feed.MaxItems, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidationWrap("limit", "must be a number", err)
	}
	if n < 1 || n > feed.MaxItems {
		return 0, apperr.NewValidation("limit", fmt.Sprintf("must be between 1 and %d", feed.MaxItems))
	}
	return n, nil
}
