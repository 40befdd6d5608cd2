package cmd

import (
	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/loader"
)

// flattenLeaves maps the dotted key of every template in a dictionary to its
// template text.
func flattenLeaves(dict i18n.Object) map[string]string {
	out := map[string]string{}
	var walk func(prefix string, obj i18n.Object)
	walk = func(prefix string, obj i18n.Object) {
		for key, value := range obj {
			full := key
			if prefix != "" {
				full = prefix + "." + key
			}
			switch v := value.(type) {
			case i18n.Leaf:
				out[full] = string(v)
			case i18n.Object:
				walk(full, v)
			}
		}
	}
	walk("", dict)
	return out
}

// keysByLanguage merges every dictionary file into per-language key sets,
// mirroring how a bundle would see them. Keys are namespace-qualified.
func keysByLanguage(files []loader.File) map[string]map[string]string {
	out := map[string]map[string]string{}
	for _, file := range files {
		byKey := out[file.Language]
		if byKey == nil {
			byKey = map[string]string{}
			out[file.Language] = byKey
		}
		for key, template := range flattenLeaves(i18n.FromMap(file.Data)) {
			byKey[file.Namespace+":"+key] = template
		}
	}
	return out
}
