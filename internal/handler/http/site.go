package http

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"news-app/internal/handler/http/respond"
)

// IndexFile is the landing page served for GET /.
const IndexFile = "index.html"

// SiteHandler serves the front-end asset tree.
// Its ServeHTTP doubles as the catch-all route: anything that is not a
// regular file in the tree gets the "Route not found" envelope.
type SiteHandler struct {
	FS fs.FS
}

// NewSiteHandler creates a SiteHandler over the given asset tree.
func NewSiteHandler(fsys fs.FS) *SiteHandler {
	return &SiteHandler{FS: fsys}
}

// Landing returns the handler for the landing page.
// A missing index.html is a deployment fault and yields the generic 500.
//
// @Summary      トップページ
// @Description  フロントエンドの index.html を返します。
// @Tags         site
// @Produce      html
// @Success      200 {string} string "HTML"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       / [get]
func (h *SiteHandler) Landing() http.Handler {
	return respond.HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		if err := h.serveFile(w, r, IndexFile); err != nil {
			return fmt.Errorf("landing page: %w", err)
		}
		return nil
	})
}

// ServeHTTP serves a static asset or falls back to the 404 envelope.
func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.HandlerFunc(h.serveAsset).ServeHTTP(w, r)
}

func (h *SiteHandler) serveAsset(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		respond.NotFound(w, respond.MsgRouteNotFound)
		return nil
	}

	name, ok := assetName(r.URL.Path)
	if !ok {
		respond.NotFound(w, respond.MsgRouteNotFound)
		return nil
	}

	info, err := fs.Stat(h.FS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			respond.NotFound(w, respond.MsgRouteNotFound)
			return nil
		}
		return fmt.Errorf("stat asset %q: %w", name, err)
	}
	if info.IsDir() {
		respond.NotFound(w, respond.MsgRouteNotFound)
		return nil
	}

	return h.serveFile(w, r, name)
}

// serveFile writes a regular file from the tree as-is.
// http.ServeContent is used instead of http.ServeFileFS, which would
// redirect any ".../index.html" request to its directory.
func (h *SiteHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := h.FS.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %q: %w", name, err)
	}
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		return fmt.Errorf("asset %q is not seekable", name)
	}

	http.ServeContent(w, r, name, info.ModTime(), rs)
	return nil
}

// assetName maps a URL path to an fs.FS name.
// Dot-files, dot-directories and ".." segments are never resolved.
func assetName(urlPath string) (string, bool) {
	for _, elem := range strings.Split(urlPath, "/") {
		if strings.HasPrefix(elem, ".") {
			return "", false
		}
	}
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

// NotFound is the JSON fallback for unmatched routes.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	respond.NotFound(w, respond.MsgRouteNotFound)
}
