package utils

import (
	"fmt"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var (
	validate = validator.New()

	emailRegex = regexp.MustCompile(constvars.RegexEmail)
	phoneRegex = regexp.MustCompile(constvars.RegexPhone)
)

const (
	tagFormRequired = "form_required"
	tagFormEmail    = "form_email"
	tagFormPassword = "form_password"
	tagFormPhone    = "form_phone"
	tagFormName     = "form_name"
	tagFormDate     = "form_date"
)

func init() {
	validate.RegisterValidation(tagFormRequired, func(fl validator.FieldLevel) bool {
		return ValidateRequired(fl.Field().String())
	})
	validate.RegisterValidation(tagFormEmail, func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	validate.RegisterValidation(tagFormPassword, func(fl validator.FieldLevel) bool {
		return ValidatePassword(fl.Field().String())
	})
	validate.RegisterValidation(tagFormPhone, func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String())
	})
	validate.RegisterValidation(tagFormName, func(fl validator.FieldLevel) bool {
		return ValidateName(fl.Field().String())
	})
	validate.RegisterValidation(tagFormDate, func(fl validator.FieldLevel) bool {
		return ValidateDate(fl.Field().String())
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return utf8.RuneCountInString(password) >= constvars.MinPasswordLength
}

// ValidatePhone ignores whitespace inside the number.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.Join(strings.Fields(phone), ""))
}

func ValidateName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= constvars.MinNameLength
}

func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

func ValidateDate(date string) bool {
	if date == "" {
		return false
	}
	_, ok := parseDate(date)
	return ok
}

type formRule struct {
	tag     string
	message func(field requests.FieldRules) string
	// nonEmptyOnly rules are skipped for empty values
	nonEmptyOnly bool
}

var formRules = map[string]formRule{
	constvars.RuleRequired: {
		tag: tagFormRequired,
		message: func(field requests.FieldRules) string {
			return fmt.Sprintf(constvars.FormMessageRequiredFormat, field.Label)
		},
	},
	constvars.RuleEmail:    {tag: tagFormEmail, message: fixedMessage(constvars.FormMessageInvalidEmail)},
	constvars.RulePassword: {tag: tagFormPassword, message: fixedMessage(constvars.FormMessageShortPassword)},
	constvars.RulePhone:    {tag: tagFormPhone, message: fixedMessage(constvars.FormMessageInvalidPhone)},
	constvars.RuleName:     {tag: tagFormName, message: fixedMessage(constvars.FormMessageShortName)},
	constvars.RuleDate:     {tag: tagFormDate, message: fixedMessage(constvars.FormMessageInvalidDate)},
}

func fixedMessage(message string) func(requests.FieldRules) string {
	return func(requests.FieldRules) string { return message }
}

// resolveFormRule turns a declared rule into a validator tag. Unknown rules
// and length rules with a malformed bound resolve to false and are skipped.
func resolveFormRule(rule string) (formRule, bool) {
	if known, ok := formRules[rule]; ok {
		return known, true
	}

	for prefix, spec := range map[string]struct {
		tag    string
		format string
	}{
		constvars.RuleMinLengthPrefix: {"min", constvars.FormMessageMinLengthFormat},
		constvars.RuleMaxLengthPrefix: {"max", constvars.FormMessageMaxLengthFormat},
	} {
		if !strings.HasPrefix(rule, prefix) {
			continue
		}
		bound, err := cast.ToIntE(strings.TrimPrefix(rule, prefix))
		if err != nil || bound < 0 {
			return formRule{}, false
		}
		return formRule{
			tag:          fmt.Sprintf("%s=%d", spec.tag, bound),
			message:      fixedMessage(fmt.Sprintf(spec.format, bound)),
			nonEmptyOnly: true,
		}, true
	}
	return formRule{}, false
}

// GetValidationErrors checks every field against its rules in declared order
// and keeps only the first violated rule per field. Fields without a value in
// values are checked as empty strings.
func GetValidationErrors(fields []requests.FieldRules, values map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, field := range fields {
		value := values[field.Name]
		for _, rule := range field.Rules {
			resolved, ok := resolveFormRule(rule)
			if !ok {
				continue
			}
			if resolved.nonEmptyOnly && value == "" {
				continue
			}
			if err := validate.Var(value, resolved.tag); err != nil {
				errs[field.Name] = resolved.message(field)
				break
			}
		}
	}

	return errs
}

var registerFormFields = []requests.FieldRules{
	{Name: "email", Label: "Email", Rules: []string{constvars.RuleRequired, constvars.RuleEmail}},
	{Name: "password", Label: "Пароль", Rules: []string{constvars.RuleRequired, constvars.RulePassword}},
	{Name: "full_name", Label: "Имя", Rules: []string{constvars.RuleRequired, constvars.RuleName, constvars.RuleMaxLengthPrefix + "100"}},
	{Name: "phone", Label: "Телефон", Rules: []string{constvars.RulePhone}},
	{Name: "date_of_birth", Label: "Дата рождения", Rules: []string{constvars.RuleDate}},
}

// ValidateRegisterRequest checks the registration form the way the sign up
// screen does. Optional fields are only checked when filled in.
func ValidateRegisterRequest(request *requests.Register) error {
	values := map[string]string{
		"email":         request.Email,
		"password":      request.Password,
		"full_name":     request.FullName,
		"phone":         request.Phone,
		"date_of_birth": request.DateOfBirth,
	}

	fields := make([]requests.FieldRules, 0, len(registerFormFields))
	for _, field := range registerFormFields {
		if values[field.Name] == "" && !hasRule(field, constvars.RuleRequired) {
			continue
		}
		fields = append(fields, field)
	}

	if errs := GetValidationErrors(fields, values); len(errs) > 0 {
		return exceptions.FormErrors(errs)
	}
	if err := ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func hasRule(field requests.FieldRules, rule string) bool {
	for _, declared := range field.Rules {
		if declared == rule {
			return true
		}
	}
	return false
}
