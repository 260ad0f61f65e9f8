package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatHeader returns a Markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a Markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}

// NumberFormatter formats aggregate values for humans.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter returns a formatter for a BCP 47 locale such as "en"
// or "de-CH". "raw" (or an empty locale) disables digit grouping.
func NewNumberFormatter(locale string) (*NumberFormatter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" || strings.EqualFold(locale, "raw") {
		return &NumberFormatter{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &NumberFormatter{printer: message.NewPrinter(tag)}, nil
}

// Format renders integral values without decimals and everything else with
// two decimals.
func (f *NumberFormatter) Format(v float64) string {
	integral := v == math.Trunc(v) && math.Abs(v) < 1e15
	if f == nil || f.printer == nil {
		if integral {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	if integral {
		return f.printer.Sprintf("%d", int64(v))
	}
	return f.printer.Sprintf("%.2f", v)
}

// FormatPercent renders part as a percentage of whole, or "-" when whole is 0.
func FormatPercent(part, whole float64) string {
	if whole == 0 {
		return "-"
	}
	return strconv.FormatFloat(part/whole*100, 'f', 1, 64) + "%"
}
