package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStaticBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>fitcoach</html>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('ok')"), 0o644))
	return dir
}

func TestSPAServesExistingFile(t *testing.T) {
	h := SPAHandler(writeStaticBundle(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log('ok')", rec.Body.String())
}

// Любой путь без соответствующего файла получает index.html:
// маршрутизация между страницами живет на клиенте.
func TestSPAFallsBackToIndex(t *testing.T) {
	h := SPAHandler(writeStaticBundle(t))

	for _, path := range []string{"/", "/dashboard", "/add-workout", "/login"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Equal(t, "<html>fitcoach</html>", rec.Body.String(), "path %s", path)
	}
}

func TestSPAPathTraversal(t *testing.T) {
	h := SPAHandler(writeStaticBundle(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/../secret.txt"
	h.ServeHTTP(rec, req)

	// filepath.Clean сводит попытку выхода из каталога к index.html
	assert.NotEqual(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}
