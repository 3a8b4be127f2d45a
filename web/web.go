// Package web holds the default front-end asset tree, embedded in the binary.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed public
var embedded embed.FS

// Public returns the embedded asset tree rooted at public/.
func Public() fs.FS {
	sub, err := fs.Sub(embedded, "public")
	if err != nil {
		// "public" is a valid constant path; fs.Sub cannot fail here.
		panic(err)
	}
	return sub
}

// Open returns the on-disk directory dir as the asset tree, or the embedded
// tree when dir is empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Public(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public dir %s: not a directory", dir)
	}
	return os.DirFS(dir), nil
}
