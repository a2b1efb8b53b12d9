package handler

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFiles embed.FS

// IndexPath путь стартовой страницы фронтенда
const IndexPath = "/static/index.html"

// StaticHandler отдает встроенные файлы фронтенда под префиксом /static/.
// Файлы отдаются через ServeContent: ServeFile и ServeFileFS перенаправляют
// пути, оканчивающиеся на /index.html, на каталог.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/static")
		name = strings.TrimPrefix(name, "/")
		if name == "" {
			name = "index.html"
		}
		if !fs.ValidPath(name) {
			http.NotFound(w, r)
			return
		}

		f, err := sub.Open(name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		content, ok := f.(io.ReadSeeker)
		if !ok {
			http.Error(w, "static file is not seekable", http.StatusInternalServerError)
			return
		}
		http.ServeContent(w, r, name, info.ModTime(), content)
	})
}

// RedirectToIndex обрабатывает GET / и перенаправляет на стартовую страницу
func RedirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

// Health обрабатывает GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
