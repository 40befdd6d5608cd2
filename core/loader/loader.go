package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lingo/core/i18n"
)

// config holds settings applied by functional options before a filesystem
// is scanned.
type config struct {
	subDir           string
	defaultNamespace string
}

// Option configures how dictionary files are discovered and decoded.
type Option func(*config)

// WithSubDir scans a subdirectory within the filesystem instead of its root.
// This is useful with embed.FS, where the embedded tree keeps its on-disk
// prefix. The path uses forward slashes regardless of OS.
func WithSubDir(dir string) Option {
	return func(c *config) {
		c.subDir = dir
	}
}

// WithDefaultNamespace sets the namespace assigned to single-file
// dictionaries (the <lang>.<ext> layout). Defaults to i18n.DefaultNamespace.
func WithDefaultNamespace(namespace string) Option {
	return func(c *config) {
		c.defaultNamespace = namespace
	}
}

// File is one decoded dictionary file.
type File struct {
	// Path is the file's slash-separated location within the scanned
	// filesystem, relative to the scan root.
	Path string
	// Language is taken from the directory name or the file stem.
	Language string
	// Namespace is taken from the file stem, or the default namespace for
	// single-file dictionaries.
	Namespace string
	// Data is the decoded dictionary content.
	Data map[string]any
}

// Load decodes every dictionary file in the filesystem and returns the
// bundle options that register them, ready to pass to i18n.New:
//
//	//go:embed locales/*
//	var locales embed.FS
//
//	opts, err := loader.Load(locales, loader.WithSubDir("locales"))
//	if err != nil {
//		return err
//	}
//	bundle, err := i18n.New(append(opts, i18n.WithDefaultLanguage("en"))...)
//
// Two layouts are recognized: <lang>/<namespace>.<ext> keeps one file per
// namespace, and <lang>.<ext> holds a whole language under the default
// namespace. Supported extensions are .json, .yaml, .yml and .toml. When the
// same language and namespace appear more than once, later files override
// earlier ones key by key.
func Load(fsys fs.FS, opts ...Option) ([]i18n.Option, error) {
	files, err := Files(fsys, opts...)
	if err != nil {
		return nil, err
	}

	options := make([]i18n.Option, 0, len(files))
	for _, file := range files {
		options = append(options, i18n.WithTranslations(file.Language, file.Namespace, file.Data))
	}
	return options, nil
}

// LoadDir is Load over a directory on the local filesystem.
func LoadDir(dir string, opts ...Option) ([]i18n.Option, error) {
	return Load(os.DirFS(dir), opts...)
}

// Files decodes every dictionary file in the filesystem and returns them with
// their resolved language and namespace, in lexical path order. Load is the
// usual entry point; Files serves tooling that needs to inspect dictionaries
// file by file.
//
// Directories at the scan root are treated as languages and their files as
// namespaces. Files at the scan root are treated as whole languages under the
// default namespace. Dot-files, nested directories and unrecognized
// extensions are skipped.
func Files(fsys fs.FS, opts ...Option) ([]File, error) {
	cfg := config{defaultNamespace: i18n.DefaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.defaultNamespace == "" {
		return nil, errors.New("default namespace cannot be empty")
	}

	if cfg.subDir != "" {
		sub, err := fs.Sub(fsys, cfg.subDir)
		if err != nil {
			return nil, fmt.Errorf("invalid locale sub-path %q: %w", cfg.subDir, err)
		}
		fsys = sub
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale root: %w", err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			perNamespace, err := readLanguageDir(fsys, name)
			if err != nil {
				return nil, err
			}
			files = append(files, perNamespace...)
			continue
		}

		stem, ext, ok := splitExt(name)
		if !ok {
			continue
		}
		data, err := decodeFile(fsys, name, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:      name,
			Language:  stem,
			Namespace: cfg.defaultNamespace,
			Data:      data,
		})
	}
	return files, nil
}

// readLanguageDir collects the per-namespace files of one language
// directory.
func readLanguageDir(fsys fs.FS, lang string) ([]File, error) {
	entries, err := fs.ReadDir(fsys, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale directory %s: %w", lang, err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		stem, ext, ok := splitExt(name)
		if !ok {
			continue
		}
		filePath := path.Join(lang, name)
		data, err := decodeFile(fsys, filePath, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:      filePath,
			Language:  lang,
			Namespace: stem,
			Data:      data,
		})
	}
	return files, nil
}

// splitExt separates a file name into its stem and recognized extension.
func splitExt(name string) (stem, ext string, ok bool) {
	ext = path.Ext(name)
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml", ".toml":
		return strings.TrimSuffix(name, ext), strings.ToLower(ext), true
	}
	return "", "", false
}

// decodeFile reads one dictionary file and decodes it by extension.
func decodeFile(fsys fs.FS, filePath, ext string) (map[string]any, error) {
	raw, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	data := map[string]any{}
	switch ext {
	case ".json":
		err = json.Unmarshal(raw, &data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	case ".toml":
		err = toml.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return data, nil
}
