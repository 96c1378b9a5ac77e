package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ramzor-dev/ramzor/internal/model"
)

// Extensions lists the file suffixes picked up by Scan.
var Extensions = []string{".pdf", ".txt"}

// FileInfo describes a document file found on disk.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Supported reports whether name has one of the recognized extensions.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan returns the documents named by paths. A directory contributes its
// supported files (non-recursive, sorted by name); a file is taken as given.
func Scan(paths ...string) ([]FileInfo, error) {
	var files []FileInfo
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, FileInfo{Name: filepath.Base(p), Path: p, Size: info.Size()})
			continue
		}
		found, err := scanDir(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func scanDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Load reads each file into a Document, preserving order.
func Load(files []FileInfo) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		docs = append(docs, model.Document{Name: f.Name, Data: data})
	}
	return docs, nil
}
