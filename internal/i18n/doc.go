// Package i18n provides compiled-in localization for report labels.
//
// Labels are looked up by key per language, falling back to English when a
// language or key is unknown. Number formatting goes through
// golang.org/x/text so that grouped integers and decimals follow the
// conventions of the selected locale.
package i18n
