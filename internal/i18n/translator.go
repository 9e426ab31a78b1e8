// Package i18n localizes taxonomy metadata and API messages. English and
// Mongolian are supported; a key without a translation is returned as is.
package i18n

import (
	"fmt"

	"catalog_service/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Mongolian}

type Translator struct {
	catalog  *catalog.Builder
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// NewTranslator builds the message catalog. defaultLang must be one of the
// supported languages ("en", "mn").
func NewTranslator(defaultLang string) (*Translator, error) {
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}
	base, _ := fallback.Base()
	found := false
	for i, tag := range supported {
		if b, _ := tag.Base(); b == base {
			fallback = supported[i]
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for key, msg := range english {
		if err := b.SetString(language.English, key, msg); err != nil {
			return nil, err
		}
	}
	for key, msg := range mongolian {
		if err := b.SetString(language.Mongolian, key, msg); err != nil {
			return nil, err
		}
	}

	// the default language goes first so that it wins on no match
	tags := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}
	return &Translator{catalog: b, tags: tags, matcher: language.NewMatcher(tags), fallback: fallback}, nil
}

// Match picks a supported language from preferences in priority order, e.g.
// a ?lang= value followed by the Accept-Language header. Empty or
// unparsable preferences are skipped.
func (t *Translator) Match(preferences ...string) language.Tag {
	for _, pref := range preferences {
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := t.matcher.Match(tags...)
		if confidence == language.No {
			continue
		}
		return t.tags[index]
	}
	return t.fallback
}

func (t *Translator) Translate(tag language.Tag, key string) string {
	return message.NewPrinter(tag, message.Catalog(t.catalog)).Sprintf(key)
}

// Category returns a localized copy of info. ID and ProductCount are kept.
func (t *Translator) Category(tag language.Tag, info domain.CategoryInfo) domain.CategoryInfo {
	p := message.NewPrinter(tag, message.Catalog(t.catalog))
	out := info
	out.Name = p.Sprintf(info.Name)
	out.Description = p.Sprintf(info.Description)
	out.Subcategories = make([]domain.Subcategory, 0, len(info.Subcategories))
	for _, sub := range info.Subcategories {
		out.Subcategories = append(out.Subcategories, domain.Subcategory{ID: sub.ID, Name: p.Sprintf(sub.Name)})
	}
	return out
}

func (t *Translator) Default() language.Tag {
	return t.fallback
}
