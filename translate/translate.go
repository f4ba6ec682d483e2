// Package translate formats user-facing messages in the caller's locale.
//
// The cpu and emulator packages build their error texts (syntax, missing
// argument, malformed register state) and the stepper's console prompts
// through From, and cmd/urm uses it for its own diagnostics. The locale is
// taken from the environment at start-up, falling back to en-US.
package translate

import (
	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warnf("urm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key in the current locale.
// Packages alias it as f, e.g. errors.New(f("malformed line")).
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

