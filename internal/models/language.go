package models

// Language identifies one of the supported project languages.
type Language string

const (
	LanguageRust   Language = "rust"
	LanguagePython Language = "python"
	LanguageNodejs Language = "nodejs"
	LanguageShell  Language = "shell"
)

// Languages lists all supported languages in configuration order.
var Languages = []Language{LanguageRust, LanguagePython, LanguageNodejs, LanguageShell}

// IsLanguage reports whether name is a supported language.
func IsLanguage(name string) bool {
	for _, l := range Languages {
		if string(l) == name {
			return true
		}
	}
	return false
}

// SourceExt returns the source-file extension for the language, without dot.
func (l Language) SourceExt() string {
	switch l {
	case LanguageRust:
		return "rs"
	case LanguagePython:
		return "py"
	case LanguageNodejs:
		return "js"
	case LanguageShell:
		return "sh"
	}
	return ""
}
