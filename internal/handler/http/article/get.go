package article

import (
	"errors"
	"net/http"

	"news-app/internal/handler/http/pathutil"
	"news-app/internal/handler/http/respond"
	"news-app/internal/observability/metrics"
	artUC "news-app/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します。数値でないIDや存在しないIDは 404 を返します。
// @Tags         news
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} GetResponse "記事詳細"
// @Failure      404 {object} respond.ErrorBody "Article not found"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /api/news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.HandlerFunc(h.handle).ServeHTTP(w, r)
}

func (h GetHandler) handle(w http.ResponseWriter, r *http.Request) error {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		metrics.RecordArticleLookup(false)
		return respond.NewAppError(http.StatusNotFound, respond.MsgArticleNotFound, err)
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) || errors.Is(err, artUC.ErrInvalidArticleID) {
			metrics.RecordArticleLookup(false)
			return respond.NewAppError(http.StatusNotFound, respond.MsgArticleNotFound, err)
		}
		return err
	}

	metrics.RecordArticleLookup(true)
	respond.JSON(w, http.StatusOK, GetResponse{Status: respond.StatusSuccess, Data: toDTO(*article)})
	return nil
}
