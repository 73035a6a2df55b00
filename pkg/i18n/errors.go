package i18n

import "errors"

var (
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")
	ErrUnknownLang   = errors.New("i18n: default language has no translations")
	ErrInvalidFile   = errors.New("i18n: invalid translation file")
)
