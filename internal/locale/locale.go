// Package locale serves the UI strings from embedded message files.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs shared by the screens and the CLI.
const (
	EnterItem        = "EnterItem"
	InputPlaceholder = "InputPlaceholder"
	ButtonSubmit     = "ButtonSubmit"
	ButtonNavigate   = "ButtonNavigate"
	ResultTitle      = "ResultTitle"
	BlankInput       = "BlankInput"
	NoEntries        = "NoEntries"
	DecodeFailed     = "DecodeFailed"
	Added            = "Added"
	HelpBack         = "HelpBack"
	HelpQuit         = "HelpQuit"
)

//go:embed locales/*.toml
var files embed.FS

var messageFiles = []string{
	"locales/active.en.toml",
	"locales/active.id.toml",
}

// Strings localizes message IDs for one language.
type Strings struct {
	localizer *i18n.Localizer
}

// New loads the embedded bundle and returns strings for lang. Languages
// without a message file fall back to English.
func New(lang string) (*Strings, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(files, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return &Strings{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// Must is New for callers that only pass known languages.
func Must(lang string) *Strings {
	s, err := New(lang)
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns the message for id, or id itself when it is not defined.
func (s *Strings) Get(id string) string {
	return s.Format(id, nil)
}

// Format renders the message for id with template data.
func (s *Strings) Format(id string, data map[string]any) string {
	msg, err := s.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
