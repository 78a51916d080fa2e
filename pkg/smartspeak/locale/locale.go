// Package locale provides localized screen titles.
package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

// Catalog resolves screen identifiers to titles in one language, falling
// back to English and then to the identifier itself.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewCatalog builds a catalog for a BCP 47 language tag such as "en" or "fil".
func NewCatalog(lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("locale: parse %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(messageFiles, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	for _, path := range paths {
		data, err := messageFiles.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", path, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", path, err)
		}
	}

	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Language returns the catalog's language tag.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Title returns the localized title of a screen, or the screen identifier
// when no title is known.
func (c *Catalog) Title(screen string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: "screen_" + screen})
	if err != nil || msg == "" {
		return screen
	}
	return msg
}
