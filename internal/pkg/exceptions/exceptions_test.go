package exceptions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrFetchResourceKinds(t *testing.T) {
	tests := []struct {
		name         string
		upstream     error
		expectedKind error
		expectedCode int
	}{
		{"Not Found", ErrUpstreamStatus(http.StatusNotFound, "", http.MethodGet, "/results/1"), ErrKindNotFound, http.StatusNotFound},
		{"Forbidden", ErrUpstreamStatus(http.StatusForbidden, "", http.MethodGet, "/results/1"), ErrKindForbidden, http.StatusForbidden},
		{"Unauthorized", ErrUpstreamStatus(http.StatusUnauthorized, "", http.MethodGet, "/results/1"), ErrKindUnauthorized, http.StatusUnauthorized},
		{"Server Error", ErrUpstreamStatus(http.StatusInternalServerError, "", http.MethodGet, "/results/1"), ErrKindFetch, http.StatusBadGateway},
		{"Transport", ErrSendHTTPRequest(errors.New("connection refused")), ErrKindFetch, http.StatusBadGateway},
		{"Deadline", ErrSendHTTPRequest(context.DeadlineExceeded), ErrKindFetch, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ErrFetchResource(tt.upstream, "result")

			assert.True(t, errors.Is(err, tt.expectedKind))
			assert.True(t, errors.Is(err, ErrKindFetch), "every read failure is a fetch failure")
			assert.False(t, errors.Is(err, ErrKindSubmission))
			assert.Equal(t, tt.expectedCode, err.StatusCode)
		})
	}
}

func TestErrFetchResourceKeepsUpstreamMessage(t *testing.T) {
	err := ErrFetchResource(ErrUpstreamStatus(http.StatusNotFound, "Результат не найден", http.MethodGet, "/results/1"), "result")

	assert.Equal(t, "Результат не найден", err.ClientMessage)
	assert.Len(t, err.Locations, 2)
}

func TestErrSubmitResource(t *testing.T) {
	err := ErrSubmitResource(ErrUpstreamStatus(http.StatusBadRequest, "bad answers", http.MethodPost, "/results/submit"), "answers")
	assert.True(t, errors.Is(err, ErrKindSubmission))
	assert.False(t, errors.Is(err, ErrKindFetch))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "bad answers", err.ClientMessage)

	err = ErrSubmitResource(ErrSendHTTPRequest(errors.New("reset")), "answers")
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
}

func TestIncompleteAnswersError(t *testing.T) {
	var err error = &IncompleteAnswersError{QuestionnaireCode: "phq9", Missing: []string{"q3"}}
	wrapped := fmt.Errorf("submit: %w", err)

	assert.True(t, errors.Is(wrapped, ErrKindIncompleteAnswers))

	var incomplete *IncompleteAnswersError
	assert.True(t, errors.As(wrapped, &incomplete))
	assert.Equal(t, []string{"q3"}, incomplete.Missing)
}

func TestUpstreamStatusWalksChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrFetchResource(ErrUpstreamStatus(http.StatusForbidden, "", http.MethodGet, "/x"), "x"))

	assert.Equal(t, http.StatusForbidden, UpstreamStatus(err))
	assert.Equal(t, 0, UpstreamStatus(errors.New("plain")))
}

func TestFormErrors(t *testing.T) {
	err := FormErrors{"email": "Некорректный email"}

	assert.True(t, errors.Is(err, ErrKindValidation))
	assert.Contains(t, err.Error(), "email")
}

func TestErrFetchResourceFallsBackWithoutUpstreamText(t *testing.T) {
	err := ErrFetchResource(ErrUpstreamStatus(http.StatusNotFound, "", http.MethodGet, "/results/1"), "result")

	assert.Equal(t, "", UpstreamMessage(err))
	assert.NotEmpty(t, err.ClientMessage)
	assert.NotEqual(t, err.ClientMessage, ErrUpstreamStatus(http.StatusBadGateway, "", "", "").ClientMessage)
}
