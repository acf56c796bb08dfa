package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"
)

// DefaultExtension is the file extension content files carry unless configured otherwise.
const DefaultExtension = ".md"

// ErrDocumentNotFound reports a slug that has no matching file.
var ErrDocumentNotFound = errors.New("markdown loader: document not found")

// LoaderConfig configures which directory is scanned and which files count as documents.
type LoaderConfig struct {
	// Dir is the slash separated directory inside the filesystem, "." for the root.
	Dir string
	// Extension limits discovered files to the given suffix (defaults to ".md").
	Extension string
}

// Loader reads the documents of a single content directory. It keeps no
// state between calls; every call observes the directory as it is now.
type Loader struct {
	fs  fs.FS
	dir string
	ext string
}

// Document is a content file split into its front matter and body.
type Document struct {
	Slug         string
	Path         string
	FrontMatter  map[string]any
	Body         string
	LastModified time.Time
}

// DocumentResult carries either a parsed document or the error that
// prevented parsing it. Per-file failures do not abort a directory scan.
type DocumentResult struct {
	Slug     string
	Path     string
	Document *Document
	Err      error
}

// DocumentError wraps a failure to parse a single file.
type DocumentError struct {
	Slug string
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("markdown loader: %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	ext := strings.TrimSpace(cfg.Extension)
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	dir := path.Clean(strings.TrimSpace(filepathToSlash(cfg.Dir)))
	if dir == "" || dir == "/" {
		dir = "."
	}
	dir = strings.TrimPrefix(dir, "/")

	return &Loader{
		fs:  filesystem,
		dir: dir,
		ext: ext,
	}
}

// Dir returns the directory scanned by the loader.
func (l *Loader) Dir() string {
	return l.dir
}

// Extension returns the file extension the loader matches.
func (l *Loader) Extension() string {
	return l.ext
}

// PathFor returns the file path a slug maps to.
func (l *Loader) PathFor(slug string) string {
	return path.Join(l.dir, slug+l.ext)
}

// Slugs lists the slugs of the directory in listing order. When two entries
// map to the same slug the later one replaces the earlier in place.
func (l *Loader) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fs, l.dir)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read dir %s: %w", l.dir, err)
	}

	slugs := make([]string, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, l.ext) {
			continue
		}
		slug := strings.TrimSuffix(name, l.ext)
		if slug == "" {
			continue
		}
		if pos, ok := index[slug]; ok {
			slugs[pos] = slug
			continue
		}
		index[slug] = len(slugs)
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// LoadDirectory reads every document of the directory in listing order.
// Only failures to list the directory itself are returned as an error.
func (l *Loader) LoadDirectory(ctx context.Context) ([]DocumentResult, error) {
	slugs, err := l.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]DocumentResult, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, loadErr := l.LoadSlug(ctx, slug)
		results = append(results, DocumentResult{
			Slug:     slug,
			Path:     l.PathFor(slug),
			Document: doc,
			Err:      loadErr,
		})
	}
	return results, nil
}

// LoadSlug reads and parses the document for slug. Unknown slugs and slugs
// that would escape the directory return ErrDocumentNotFound; parse failures
// return a *DocumentError.
func (l *Loader) LoadSlug(ctx context.Context, slug string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, slug)
	}
	rel := l.PathFor(slug)
	if !fs.ValidPath(rel) {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, slug)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, rel)
		}
		return nil, fmt.Errorf("markdown loader stat %s: %w", rel, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, rel)
	}

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, &DocumentError{Slug: slug, Path: rel, Err: err}
	}

	return &Document{
		Slug:         slug,
		Path:         rel,
		FrontMatter:  meta,
		Body:         string(body),
		LastModified: info.ModTime(),
	}, nil
}

// ValidSlug reports whether slug can name a file inside a content directory.
func ValidSlug(slug string) bool {
	if strings.TrimSpace(slug) == "" {
		return false
	}
	if slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
