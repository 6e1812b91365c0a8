package models

import "time"

// Session is the BFF login session kept in Redis. Upstream tokens are stored
// sealed and are never returned to a device.
type Session struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
	User         *User     `json:"user,omitempty"`
	SealedTokens string    `json:"sealed_tokens"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Tokens are the scoring API credentials of one session.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionState names the phase of a questionnaire session.
type SessionState string

const (
	SessionStateEmpty     SessionState = "empty"
	SessionStateLoaded    SessionState = "loaded"
	SessionStateAnswering SessionState = "answering"
)

// SessionSnapshot is a read-only copy of a questionnaire session.
type SessionSnapshot struct {
	State           SessionState   `json:"state"`
	Questionnaire   *Questionnaire `json:"questionnaire,omitempty"`
	CurrentQuestion *Question      `json:"current_question,omitempty"`
	Position        int            `json:"position"`
	QuestionCount   int            `json:"question_count"`
	Answers         AnswerMap      `json:"answers"`
	Missing         []string       `json:"missing,omitempty"`
	Complete        bool           `json:"complete"`
	Submitting      bool           `json:"submitting"`
}
