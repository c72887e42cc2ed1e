package httpapi

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// staticHandler serves the web client bundle. Unknown paths fall back to
// index.html so client-side routing survives a page reload.
type staticHandler struct {
	dir string
}

func newStaticHandler(dir string) *staticHandler {
	return &staticHandler{dir: dir}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// path.Clean on a rooted path cannot escape the bundle directory
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}

	full := filepath.Join(h.dir, filepath.FromSlash(strings.TrimPrefix(name, "/")))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
		return
	}
	http.ServeFile(w, r, full)
}
