package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsxc/internal/diag"
	"jsxc/internal/source"
)

// TransformDirResult holds one file's outcome from a directory transform.
type TransformDirResult struct {
	Path      string        // path relative to the walked directory
	FileID    source.FileID // 0 when the file failed to load
	Output    string        // empty on structural or load error
	Bag       *diag.Bag
	FromCache bool
}

// listSourceFiles returns the sorted list of *.jsx and *.js files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".jsx") || strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TransformDir transforms every *.jsx and *.js file under dir in parallel.
// Results come back in the sorted file order regardless of completion order.
// cache may be nil to disable the disk cache.
func TransformDir(ctx context.Context, dir string, opts TransformOptions, jobs int, cache *DiskCache) (*source.FileSet, []TransformDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload files serially; the FileSet is not written to concurrently.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own slot, so no mutex is needed.
	results := make([]TransformDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				bag := diag.NewBag(opts.MaxDiagnostics)

				if loadErr, hadError := loadErrors[path]; hadError {
					bag.Add(diag.Diagnostic{
						Severity: diag.SevError,
						Code:     diag.IOLoadFileError,
						Message:  "failed to load file: " + loadErr.Error(),
					})
					results[i] = TransformDirResult{Path: path, Bag: bag}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)

				if output, ok := cache.Lookup(opts, file.Content); ok {
					results[i] = TransformDirResult{
						Path: path, FileID: fileID, Output: output,
						Bag: bag, FromCache: true,
					}
					return nil
				}

				output := TransformSource(file, opts, bag)
				if bag.Len() == 0 {
					cache.Store(opts, file.Content, output)
				}

				results[i] = TransformDirResult{
					Path: path, FileID: fileID, Output: output, Bag: bag,
				}
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
