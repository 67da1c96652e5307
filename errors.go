package plurals

import "errors"

// ErrUnknownLocale indicates a locale code absent from the plural rule table.
var ErrUnknownLocale = errors.New("plurals: unknown locale")

// ErrMissingTranslation indicates that no translation was found for locale/key.
var ErrMissingTranslation = errors.New("plurals: missing translation")
