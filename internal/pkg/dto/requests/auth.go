package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type UpdateProfile struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type ChangePassword struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,nefield=OldPassword"`
}

type LinkTelegram struct {
	TelegramUsername string `json:"telegram_username" validate:"required,min=2,max=64"`
	VerificationCode string `json:"verification_code" validate:"required"`
}
