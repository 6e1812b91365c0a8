package constvars

const (
	DefaultDatePattern     = "dd.MM.yyyy"
	DefaultDateTimePattern = "dd.MM.yyyy HH:mm"
	DefaultTruncateLength  = 50
)

const (
	TimeAgoJustNow       = "только что"
	TimeAgoMinutesFormat = "%d мин назад"
	TimeAgoHoursFormat   = "%d ч назад"
	TimeAgoDaysFormat    = "%d дн назад"
)

// Labels of the PHQ-9 answer options.
var AnswerOptionLabels = map[int]string{
	0: "Ни разу",
	1: "Несколько дней",
	2: "Более половины дней",
	3: "Почти каждый день",
}

const (
	AnswerNotGiven          = "Не отвечено"
	AnswerValueFormat       = "Значение: %d"
	ReportUnknownTest       = "Неизвестный тест"
	ReportUnknownSeverity   = "Не определено"
	ReportTitleFormat       = "Результат теста %s"
	ReportScoreFormat       = "Балл: %d"
	ReportSeverityFormat    = "Тяжесть: %s"
	ReportDateFormat        = "Дата: %s"
	ReportInterpretationFmt = "Интерпретация: %s"
)
