// Package datefmt formats partial calendar dates for a fixed locale.
package datefmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Present is shown in place of a missing end date.
const Present = "Present"

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Formatter renders partial dates using one locale's calendar names.
type Formatter struct {
	trans locales.Translator
}

// New creates a formatter for a BCP 47 locale tag such as "en-GB" or "fr".
// POSIX style values ("de_DE.UTF-8") are accepted too. Locales without
// calendar data fall back to English.
func New(locale string) (formatter *Formatter, err error) {
	if locale == "" {
		locale = DefaultLocale
	}

	var tag language.Tag
	tag, err = language.Parse(normalizeLocale(locale))
	if err != nil {
		err = errors.Wrapf(err, "invalid locale: %s", locale)
		return formatter, err
	}

	uni := universal()
	trans, _ := uni.FindTranslator(candidates(tag)...)

	formatter = &Formatter{trans: trans}
	return formatter, err
}

// MustNew is New for locales known to be valid.
func MustNew(locale string) (formatter *Formatter) {
	var err error
	formatter, err = New(locale)
	if err != nil {
		panic(err)
	}
	return formatter
}

// Locale returns the name of the calendar data in use.
func (f *Formatter) Locale() (locale string) {
	locale = f.trans.Locale()
	return locale
}

// Format renders a date. A nil date renders as Present. The year is always
// shown; the month only when supplied, and the day only together with it.
func (f *Formatter) Format(date *cv.PartialDate) (formatted string) {
	if date == nil {
		formatted = Present
		return formatted
	}

	formatted = strconv.Itoa(date.Year)
	if date.Month == nil || *date.Month < 1 || *date.Month > 12 {
		return formatted
	}

	month := time.Month(*date.Month)
	if date.Day == nil || *date.Day < 1 || *date.Day > daysIn(date.Year, month) {
		formatted = f.trans.MonthWide(month) + " " + formatted
		return formatted
	}

	formatted = f.trans.FmtDateLong(time.Date(date.Year, month, *date.Day, 0, 0, 0, 0, time.UTC))
	return formatted
}

// Duration renders a start/end range such as "2020 - Present".
func (f *Formatter) Duration(start cv.PartialDate, end *cv.PartialDate) (duration string) {
	duration = f.Format(&start) + " - " + f.Format(end)
	return duration
}

func daysIn(year int, month time.Month) (days int) {
	days = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return days
}

func normalizeLocale(locale string) (normalized string) {
	normalized = locale
	if i := strings.IndexAny(normalized, ".@"); i >= 0 {
		normalized = normalized[:i]
	}
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

// candidates lists translator names from most to least specific.
func candidates(tag language.Tag) (names []string) {
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		names = append(names, base.String()+"_"+region.String())
	}
	names = append(names, base.String())
	return names
}

func universal() (uni *ut.UniversalTranslator) {
	fallback := en.New()
	uni = ut.New(fallback,
		fallback,
		en_US.New(),
		en_GB.New(),
		de.New(),
		es.New(),
		fr.New(),
		it.New(),
		nl.New(),
		pt_BR.New(),
	)
	return uni
}
