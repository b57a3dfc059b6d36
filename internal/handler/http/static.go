package http

import (
	"net/http"
)

// avatarFileServer serves files from dir. Missing files and directories get
// the JSON 404 instead of a listing.
func avatarFileServer(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, err := root.Open(r.URL.Path)
		if err != nil {
			notFound(w, r)
			return
		}
		info, err := f.Stat()
		f.Close()
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}
