package utils

import (
	"medcalc-service/internal/pkg/dto/requests"
	"strings"
)

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	trimStringPointer(input.FullName)
	trimStringPointer(input.Phone)
	trimStringPointer(input.DateOfBirth)
	if input.Gender != nil {
		*input.Gender = strings.TrimSpace(strings.ToLower(*input.Gender))
	}
}

func SanitizeLinkTelegramRequest(input *requests.LinkTelegram) {
	input.TelegramUsername = strings.TrimPrefix(strings.TrimSpace(input.TelegramUsername), "@")
	input.VerificationCode = strings.TrimSpace(input.VerificationCode)
}
