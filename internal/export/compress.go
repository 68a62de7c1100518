package export

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// CompressFile writes a brotli-compressed copy of path next to it and
// returns the side-car path (path + ".br"). The original is left
// untouched.
func CompressFile(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("export: open %s: %w", path, err)
	}
	defer src.Close()

	outPath := path + ".br"
	dst, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", outPath, err)
	}

	bw := brotli.NewWriterLevel(dst, brotli.DefaultCompression)
	if _, err := io.Copy(bw, src); err != nil {
		bw.Close()
		dst.Close()
		os.Remove(outPath)
		return "", fmt.Errorf("export: compress %s: %w", path, err)
	}
	if err := bw.Close(); err != nil {
		dst.Close()
		os.Remove(outPath)
		return "", fmt.Errorf("export: flush %s: %w", outPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("export: close %s: %w", outPath, err)
	}
	return outPath, nil
}
