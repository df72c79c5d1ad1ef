// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible greenpak messages in the
// caller's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the locale used when none can be detected.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	printer = message.NewPrinter(Match(detect()...))
}

func detect() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("greenpak: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return
}

// Match picks the best supported language tag for the locales.
func Match(locales ...string) language.Tag {
	if len(locales) == 0 {
		locales = []string{Fallback}
	}
	return message.MatchLanguage(locales...)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
