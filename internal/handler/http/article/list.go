package article

import (
	"log/slog"
	"net/http"

	"news-app/internal/handler/http/respond"
	"news-app/internal/observability/logging"
	artUC "news-app/internal/usecase/article"
)

type ListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  カタログ内のすべての記事を登録順（ID 1 から）で返します。
// @Tags         news
// @Produce      json
// @Success      200 {object} ListResponse "記事一覧"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /api/news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.HandlerFunc(h.handle).ServeHTTP(w, r)
}

func (h ListHandler) handle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	articles, err := h.Svc.List(ctx)
	if err != nil {
		return err
	}

	if h.Logger != nil {
		logging.WithRequestID(ctx, h.Logger).Debug("article list served",
			slog.Int("returned_count", len(articles)))
	}

	respond.JSON(w, http.StatusOK, newListResponse(articles))
	return nil
}
