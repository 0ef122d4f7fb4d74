package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FrontendHandler serves the bundled single-page frontend. Unknown paths fall
// back to the index document so client-side routing keeps working.
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requested := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(requested)
	if err != nil || info.IsDir() || strings.HasSuffix(r.URL.Path, "/") {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}

	http.ServeFile(w, r, requested)
}
