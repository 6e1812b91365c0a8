package utils

import (
	"fmt"
	"medcalc-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var inputDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	constvars.DateOnlyLayout,
}

var (
	monthsGenitive = [...]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"}
	monthsShort    = [...]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."}
)

// Longest tokens first so that "yyyy" wins over "yy" and "MMMM" over "MM".
var datePatternTokens = []string{"yyyy", "yy", "MMMM", "MMM", "MM", "M", "dd", "d", "HH", "H", "mm", "m", "ss", "s"}

func parseDate(input string) (time.Time, bool) {
	for _, layout := range inputDateLayouts {
		if parsed, err := time.Parse(layout, input); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO-like timestamp with a dd.MM.yyyy style pattern.
// Text between single quotes is copied as is. Input that cannot be parsed is
// returned unchanged; empty input renders as an empty string.
func FormatDate(input, pattern string) string {
	if input == "" {
		return ""
	}
	if pattern == "" {
		pattern = constvars.DefaultDatePattern
	}

	date, ok := parseDate(input)
	if !ok {
		return input
	}
	return renderDatePattern(date, pattern)
}

func FormatDateTime(input string) string {
	return FormatDate(input, constvars.DefaultDateTimePattern)
}

func renderDatePattern(date time.Time, pattern string) string {
	var builder strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				builder.WriteString(pattern[i+1:])
				break
			}
			builder.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		token := matchDateToken(pattern[i:])
		if token == "" {
			builder.WriteByte(pattern[i])
			i++
			continue
		}
		builder.WriteString(renderDateToken(date, token))
		i += len(token)
	}

	return builder.String()
}

func matchDateToken(rest string) string {
	for _, token := range datePatternTokens {
		if strings.HasPrefix(rest, token) {
			return token
		}
	}
	return ""
}

func renderDateToken(date time.Time, token string) string {
	switch token {
	case "yyyy":
		return fmt.Sprintf("%04d", date.Year())
	case "yy":
		return fmt.Sprintf("%02d", date.Year()%100)
	case "MMMM":
		return monthsGenitive[date.Month()-1]
	case "MMM":
		return monthsShort[date.Month()-1]
	case "MM":
		return fmt.Sprintf("%02d", int(date.Month()))
	case "M":
		return strconv.Itoa(int(date.Month()))
	case "dd":
		return fmt.Sprintf("%02d", date.Day())
	case "d":
		return strconv.Itoa(date.Day())
	case "HH":
		return fmt.Sprintf("%02d", date.Hour())
	case "H":
		return strconv.Itoa(date.Hour())
	case "mm":
		return fmt.Sprintf("%02d", date.Minute())
	case "m":
		return strconv.Itoa(date.Minute())
	case "ss":
		return fmt.Sprintf("%02d", date.Second())
	case "s":
		return strconv.Itoa(date.Second())
	}
	return token
}

// FormatTimeAgo describes how long before now the input happened. Anything
// older than a week falls back to the date itself.
func FormatTimeAgo(input string, now time.Time) string {
	if input == "" {
		return ""
	}

	date, ok := parseDate(input)
	if !ok {
		return FormatDate(input, constvars.DefaultDatePattern)
	}

	seconds := int(now.Sub(date).Seconds())
	switch {
	case seconds < 60:
		return constvars.TimeAgoJustNow
	case seconds < 3600:
		return fmt.Sprintf(constvars.TimeAgoMinutesFormat, seconds/60)
	case seconds < 86400:
		return fmt.Sprintf(constvars.TimeAgoHoursFormat, seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf(constvars.TimeAgoDaysFormat, seconds/86400)
	}
	return renderDatePattern(date, constvars.DefaultDatePattern)
}

func FormatScore(score, maxScore int) string {
	return fmt.Sprintf("%d/%d", score, maxScore)
}

var (
	nonDigitRegex      = regexp.MustCompile(`\D`)
	phoneGroupingRegex = regexp.MustCompile(`^(\d)(\d{3})(\d{3})(\d{2})(\d{2})$`)
)

// FormatPhoneNumber groups an 11 digit number as +7 (999) 123-45-67. Other
// numbers are returned as given.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigitRegex.ReplaceAllString(phone, "")
	match := phoneGroupingRegex.FindStringSubmatch(digits)
	if match == nil {
		return phone
	}
	return fmt.Sprintf("+%s (%s) %s-%s-%s", match[1], match[2], match[3], match[4], match[5])
}

func Capitalize(input string) string {
	if input == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(input)
	return string(unicode.ToUpper(first)) + strings.ToLower(input[size:])
}

func Truncate(input string, length int) string {
	if length <= 0 {
		length = constvars.DefaultTruncateLength
	}
	if utf8.RuneCountInString(input) <= length {
		return input
	}
	return string([]rune(input)[:length]) + "..."
}

// AnswerLabel returns the display label of a PHQ-9 option value.
func AnswerLabel(value int) string {
	if value < 0 {
		return constvars.AnswerNotGiven
	}
	if label, ok := constvars.AnswerOptionLabels[value]; ok {
		return label
	}
	return fmt.Sprintf(constvars.AnswerValueFormat, value)
}
