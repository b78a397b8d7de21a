package service

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"

	apperrors "github.com/licentio/licentio/internal/errors"
)

// rsaCredentialDecryptor decrypts RSA-OAEP encrypted, base64-encoded
// passwords submitted by clients that encrypt credentials in transit.
type rsaCredentialDecryptor struct {
	key *rsa.PrivateKey
}

// Decrypt attempts to recover the plaintext password. Values that are not
// valid base64 or do not decrypt with the configured key are returned
// unchanged: clients that send plain passwords must keep working.
func (d *rsaCredentialDecryptor) Decrypt(value string) string {
	if d.key == nil || value == "" {
		return value
	}

	ciphertext, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return value
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, d.key, ciphertext, nil)
	if err != nil {
		return value
	}

	return string(plaintext)
}

// noopCredentialDecryptor passes every value through literally.
type noopCredentialDecryptor struct{}

func (noopCredentialDecryptor) Decrypt(value string) string {
	return value
}

// NewCredentialDecryptor loads a PEM-encoded RSA private key from keyPath.
// An empty path yields a pass-through decryptor.
func NewCredentialDecryptor(keyPath string) (CredentialDecryptor, error) {
	if keyPath == "" {
		return noopCredentialDecryptor{}, nil
	}

	pemBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read transport key")
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, apperrors.New("transport key is not valid PEM")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		parsed, pkcs8Err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if pkcs8Err != nil {
			return nil, apperrors.Wrap(err, "failed to parse transport key")
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, apperrors.New("transport key is not an RSA key")
		}
		key = rsaKey
	}

	return &rsaCredentialDecryptor{key: key}, nil
}
