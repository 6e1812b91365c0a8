package constvars

// Form rule names understood by utils.GetValidationErrors.
const (
	RuleRequired        = "required"
	RuleEmail           = "email"
	RulePassword        = "password"
	RulePhone           = "phone"
	RuleName            = "name"
	RuleDate            = "date"
	RuleMinLengthPrefix = "minLength:"
	RuleMaxLengthPrefix = "maxLength:"
)

// Messages shown next to a form field, in the language of the mobile client.
const (
	FormMessageRequiredFormat  = "%s обязательно"
	FormMessageInvalidEmail    = "Некорректный email"
	FormMessageShortPassword   = "Минимум 6 символов"
	FormMessageInvalidPhone    = "Некорректный телефон"
	FormMessageShortName       = "Минимум 2 символа"
	FormMessageMinLengthFormat = "Минимум %d символов"
	FormMessageMaxLengthFormat = "Максимум %d символов"
	FormMessageInvalidDate     = "Некорректная дата"
)

const (
	RegexEmail = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexPhone = `^\+?[1-9]\d{1,14}$`
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
)
