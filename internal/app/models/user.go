package models

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Gender           string `json:"gender,omitempty"`
	TelegramUsername string `json:"telegram_username,omitempty"`
	IsActive         bool   `json:"is_active"`
	IsAdmin          bool   `json:"is_admin"`
	ResultsCount     int    `json:"results_count,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var raw struct {
		alias
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = User(raw.alias)
	id, err := cast.ToStringE(raw.ID)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// ProfileChanges holds the editable profile fields. Nil fields are left as
// they are when merged into a User.
type ProfileChanges struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
}

func (u *User) Merge(changes ProfileChanges) {
	if changes.FullName != nil {
		u.FullName = *changes.FullName
	}
	if changes.Phone != nil {
		u.Phone = *changes.Phone
	}
	if changes.DateOfBirth != nil {
		u.DateOfBirth = *changes.DateOfBirth
	}
	if changes.Gender != nil {
		u.Gender = *changes.Gender
	}
}

// UserPage is a page of the administrator's user list.
type UserPage struct {
	Users   []User `json:"users"`
	Total   int    `json:"total,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
}

// AuthTokens is the scoring API's answer to a login.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}
