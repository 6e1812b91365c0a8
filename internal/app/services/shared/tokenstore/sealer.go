package tokenstore

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

type secretboxSealer struct {
	key [keySize]byte
}

// NewSecretboxSealer accepts a base64 encoded or a raw 32 byte key.
func NewSecretboxSealer(secret string) (contracts.TokenSealer, error) {
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil || len(raw) != keySize {
		raw = []byte(secret)
	}
	if len(raw) != keySize {
		return nil, exceptions.ErrInvalidSecretKey()
	}

	sealer := &secretboxSealer{}
	copy(sealer.key[:], raw)
	return sealer, nil
}

func (s *secretboxSealer) Seal(tokens *models.Tokens) (string, error) {
	plaintext, err := json.Marshal(tokens)
	if err != nil {
		return "", exceptions.ErrSealTokens(err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", exceptions.ErrSealTokens(err)
	}

	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *secretboxSealer) Open(sealed string) (*models.Tokens, error) {
	box, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, exceptions.ErrOpenTokens(err)
	}
	if len(box) < nonceSize+secretbox.Overhead {
		return nil, exceptions.ErrOpenTokens(errors.New("sealed tokens too short"))
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plaintext, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, exceptions.ErrOpenTokens(errors.New("sealed tokens failed authentication"))
	}

	tokens := new(models.Tokens)
	err = json.Unmarshal(plaintext, tokens)
	if err != nil {
		return nil, exceptions.ErrOpenTokens(err)
	}
	return tokens, nil
}
