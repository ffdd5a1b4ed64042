package media

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "https://via.placeholder.com/400x500/3B82F6/FFFFFF?text=Profile+Image"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"My_image/my_image.png":          {Data: []byte("\x89PNG fake")},
		"project_images/casestudy1.webp": {Data: []byte("RIFF fake")},
	}
}

func TestResolverURL(t *testing.T) {
	r := NewResolver(testFS(), placeholder)

	assert.Equal(t, "/media/My_image/my_image.png", r.URL("My_image/my_image.png"))
	assert.Equal(t, "/media/My_image/my_image.png", r.URL("/My_image/./my_image.png"))
	assert.Equal(t, placeholder, r.URL("project_images/casestudy9.webp"))
	assert.Equal(t, placeholder, r.URL("../secrets.txt"))
	assert.Equal(t, placeholder, r.URL("My_image"), "directories are not images")
	assert.Equal(t, placeholder, r.URL(""))
}

func TestNilResolver(t *testing.T) {
	var r *Resolver
	assert.False(t, r.Exists("anything.png"))
}

func TestOnErrorSwapsOnce(t *testing.T) {
	r := NewResolver(testFS(), placeholder)
	js := string(r.OnError())
	assert.Contains(t, js, "this.onerror=null")
	assert.Contains(t, js, "this.src='https:")
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewResolver(testFS(), placeholder)

	router := gin.New()
	router.GET("/media/*filepath", r.Handler())

	t.Run("serves existing file", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/media/project_images/casestudy1.webp", nil)
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "RIFF fake", rr.Body.String())
		assert.Contains(t, rr.Header().Get("Cache-Control"), "max-age")
	})

	t.Run("redirects missing file to placeholder", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/media/My_image/missing.png", nil)
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, placeholder, rr.Header().Get("Location"))
	})

	t.Run("refuses to escape the root", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/media/..%2f..%2fetc%2fpasswd", nil)
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, placeholder, rr.Header().Get("Location"))
	})
}
