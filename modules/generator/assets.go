package generator

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets/*.png
var assetFS embed.FS

// Assets returns the embedded guide images, rooted at the asset directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

func assetsHandler() http.Handler {
	files := http.FileServerFS(Assets())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}
