package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// static serves files from the configured static directory. A directory is
// answered with its index.html, or 404 when it has none. Directories are
// never listed and no redirects are issued.
func (h *Handler) static() http.HandlerFunc {
	root := http.Dir(h.cfg.StaticDir)

	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)

		f, info, err := openStatic(root, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}

// openStatic opens name, falling back to name/index.html when name is a
// directory.
func openStatic(root http.FileSystem, name string) (http.File, fs.FileInfo, error) {
	f, info, err := openRegular(root, name)
	if !errors.Is(err, errIsDirectory) {
		return f, info, err
	}

	return openRegular(root, strings.TrimSuffix(name, "/")+"/index.html")
}

func openRegular(root http.FileSystem, name string) (http.File, fs.FileInfo, error) {
	f, err := root.Open(name)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, errIsDirectory
	}

	return f, info, nil
}
