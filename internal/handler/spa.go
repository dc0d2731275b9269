package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler отдает собранный фронтенд-бандл. Любой путь, не указывающий
// на существующий файл, получает index.html: маршрутизация между
// страницами живет на клиенте.
func SPAHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))
	indexPath := filepath.Join(staticDir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if !strings.HasPrefix(requested, filepath.Clean(staticDir)) {
			http.NotFound(w, r)
			return
		}

		info, err := os.Stat(requested)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, indexPath)
			return
		}

		fileServer.ServeHTTP(w, r)
	}
}
