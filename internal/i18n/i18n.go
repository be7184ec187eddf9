package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/go-ini/ini"
	"golang.org/x/text/language"
)

// Translator держит каталоги переводов, загруженные один раз на старте.
// После загрузки структура только читается, ленивых кэшей нет.
type Translator struct {
	catalogs map[string]map[string]string
	codes    []string
	fallback string
	matcher  language.Matcher
}

// Load читает lang/<code>.ini для каждого поддерживаемого языка.
// Отсутствующий файл - ошибка старта, а не пустой каталог во время работы.
func Load(dir string, codes []string, fallback string) (*Translator, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("не задан список языков")
	}

	catalogs := make(map[string]map[string]string, len(codes))
	tags := make([]language.Tag, 0, len(codes))

	for _, code := range codes {
		path := filepath.Join(dir, code+".ini")

		file, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("не удалось загрузить каталог переводов %s: %w", path, err)
		}

		catalogs[code] = file.Section("").KeysHash()

		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("неизвестный код языка %q: %w", code, err)
		}
		tags = append(tags, tag)
	}

	if _, ok := catalogs[fallback]; !ok {
		fallback = codes[0]
	}

	return &Translator{
		catalogs: catalogs,
		codes:    codes,
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// T переводит ключ. Неизвестный ключ возвращается как есть, чтобы дыра
// в каталоге была видна на странице, а не пряталась за пустой строкой.
func (t *Translator) T(lang, key string) string {
	catalog, ok := t.catalogs[lang]
	if !ok {
		catalog = t.catalogs[t.fallback]
	}

	if value, ok := catalog[key]; ok {
		return value
	}
	return key
}

func (t *Translator) Supported(code string) bool {
	_, ok := t.catalogs[code]
	return ok
}

func (t *Translator) Default() string {
	return t.fallback
}

// Negotiate подбирает язык по заголовку Accept-Language, когда в сессии
// ещё нет явного выбора.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.fallback
	}

	_, index := language.MatchStrings(t.matcher, acceptLanguage)
	if index < 0 || index >= len(t.codes) {
		return t.fallback
	}

	return t.codes[index]
}
