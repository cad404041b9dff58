package timeutil

import "time"

// Locale selects the weekday-name table for day labels.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

var weekdayNames = map[Locale][7]string{
	LocaleEN: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	LocaleRU: {"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"},
}

// ClassifyDay labels a "YYYY-MM-DD" date relative to a reference date:
// "today" when they coincide, "tomorrow" when date is one calendar day
// later, otherwise the English weekday name of date. Comparison is on
// calendar days, never instants, so it cannot drift near midnight.
func ClassifyDay(date, reference string) string {
	return ClassifyDayIn(date, reference, LocaleEN)
}

// ClassifyDayIn is ClassifyDay with an explicit weekday-name locale.
func ClassifyDayIn(date, reference string, locale Locale) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	ref, err := time.Parse("2006-01-02", reference)
	if err != nil {
		return ""
	}

	switch int(d.Sub(ref).Hours() / 24) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}

	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[LocaleEN]
	}
	return names[int(d.Weekday())]
}
