package i18n

import (
	"encoding/json"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

const DefaultLang = "id"

type Localizer struct {
	translations map[string]map[string]string
}

// New memuat semua file <lang>.json dari fsys.
func New(fsys fs.FS) (*Localizer, error) {
	translations := make(map[string]map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		lang := strings.TrimSuffix(d.Name(), ".json")
		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		var langMap map[string]string
		if err := json.NewDecoder(file).Decode(&langMap); err != nil {
			return errors.Wrapf(err, "decode %s", path)
		}
		translations[lang] = langMap
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load language files")
	}

	return &Localizer{translations: translations}, nil
}

func (l *Localizer) Languages() []string {
	langs := make([]string, 0, len(l.translations))
	for lang := range l.translations {
		langs = append(langs, lang)
	}
	return langs
}

// Get memakai bahasa default bila kunci tidak ada, lalu kunci itu sendiri.
func (l *Localizer) Get(lang, key string) string {
	if langMap, ok := l.translations[lang]; ok {
		if value, ok := langMap[key]; ok {
			return value
		}
	}

	if langMap, ok := l.translations[DefaultLang]; ok {
		if value, ok := langMap[key]; ok {
			return value
		}
	}
	return key
}

// Format mengganti placeholder {name}; args berupa pasangan nama/nilai.
func (l *Localizer) Format(lang, key string, args ...string) string {
	text := l.Get(lang, key)
	if len(args) < 2 {
		return text
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
