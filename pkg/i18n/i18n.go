// Package i18n holds the user-facing strings of the editor in every
// supported language.
//
// Tables are static; switching language is a matter of calling [For] with a
// different [Language]. There is no global "current language": callers keep
// the selected language in their own state and pass the resulting
// [Translations] to whatever needs labels (the graph store uses NewNode and
// CentralIdea for default node text).
package i18n

import (
	"fmt"
	"strings"
)

// Language identifies a translation table.
type Language string

// Supported languages.
const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Default is the language used when none is configured. Maps are labeled
// in English unless the config file, the --lang flag or the editor's
// language toggle selects Portuguese.
const Default = English

// Translations is the full set of labels for one language.
type Translations struct {
	AddNode       string
	AddChildNode  string
	AddOrphanNode string
	Export        string
	ExportPNG     string
	ExportPDF     string
	ZoomIn        string
	ZoomOut       string
	ResetZoom     string
	AddChild      string
	DeleteNode    string
	ChangeColor   string
	SelectIcon    string
	RemoveIcon    string
	NewNode       string
	CentralIdea   string
	Reset         string
	NewMap        string
	OK            string
	Cancel        string
	Resize        string
}

var tables = map[Language]Translations{
	Portuguese: {
		AddNode:       "Adicionar Nó",
		AddChildNode:  "+ Filho",
		AddOrphanNode: "+ Órfão",
		Export:        "Exportar",
		ExportPNG:     "Como PNG",
		ExportPDF:     "Como PDF",
		ZoomIn:        "Ampliar",
		ZoomOut:       "Reduzir",
		ResetZoom:     "Redefinir Zoom",
		AddChild:      "Adicionar Filho",
		DeleteNode:    "Excluir Nó",
		ChangeColor:   "Alterar Cor",
		SelectIcon:    "Selecionar Ícone",
		RemoveIcon:    "Remover Ícone",
		NewNode:       "Novo Nó",
		CentralIdea:   "Ideia Central",
		Reset:         "Redefinir",
		NewMap:        "Novo Mapa",
		OK:            "OK",
		Cancel:        "Cancelar",
		Resize:        "Redimensionar",
	},
	English: {
		AddNode:       "Add Node",
		AddChildNode:  "+ Child",
		AddOrphanNode: "+ Orphan",
		Export:        "Export",
		ExportPNG:     "As PNG",
		ExportPDF:     "As PDF",
		ZoomIn:        "Zoom In",
		ZoomOut:       "Zoom Out",
		ResetZoom:     "Reset Zoom",
		AddChild:      "Add Child",
		DeleteNode:    "Delete Node",
		ChangeColor:   "Change Color",
		SelectIcon:    "Select Icon",
		RemoveIcon:    "Remove Icon",
		NewNode:       "New Node",
		CentralIdea:   "Central Idea",
		Reset:         "Reset",
		NewMap:        "New Map",
		OK:            "OK",
		Cancel:        "Cancel",
		Resize:        "Resize",
	},
}

// For returns the translation table for lang, falling back to [Default]
// for unknown languages.
func For(lang Language) Translations {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[Default]
}

// Parse converts a language code such as "en" or "PT" into a Language.
func Parse(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tables[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q (must be 'en' or 'pt')", s)
	}
	return lang, nil
}

// Toggle returns the other language, mirroring the toolbar's language switch.
func (l Language) Toggle() Language {
	if l == Portuguese {
		return English
	}
	return Portuguese
}

// All returns the supported languages in display order.
func All() []Language {
	return []Language{English, Portuguese}
}
