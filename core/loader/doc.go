// Package loader reads translation dictionaries from any fs.FS and turns
// them into i18n bundle options.
//
// # File Layouts
//
// Two layouts can be mixed freely within one directory tree:
//
//	locales/
//	  en/
//	    app.json        language "en", namespace "app"
//	    errors.yaml     language "en", namespace "errors"
//	  de/
//	    app.json        language "de", namespace "app"
//	  uk.toml           language "uk", default namespace
//
// A directory at the root names a language and each file inside it a
// namespace. A file at the root holds a whole language under the default
// namespace (see WithDefaultNamespace). Dot-files, nested directories and
// files with unrecognized extensions are ignored.
//
// # Formats
//
// Files are decoded by extension: .json, .yaml, .yml and .toml. All formats
// decode into the same nested structure, so dictionaries can migrate between
// formats without touching lookup keys.
//
// # Usage
//
// Load returns bundle options ready for i18n.New:
//
//	opts, err := loader.LoadDir("./locales")
//	if err != nil {
//		log.Fatal(err)
//	}
//	bundle, err := i18n.New(append(opts, i18n.WithDefaultLanguage("en"))...)
//
// Embedded filesystems work the same way; use WithSubDir to step over the
// embed prefix:
//
//	//go:embed locales/*
//	var locales embed.FS
//
//	opts, err := loader.Load(locales, loader.WithSubDir("locales"))
//
// Files exposes the decoded dictionaries one file at a time for tooling that
// inspects translations rather than serving them.
package loader
