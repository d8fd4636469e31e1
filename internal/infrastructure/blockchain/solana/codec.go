package sdk

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/mr-tron/base58"
	"github.com/whiteelite/ixservice/internal/domain/entities"
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidSecret    = errors.New("invalid secret key")
	ErrInvalidEncoding  = errors.New("invalid encoding")
	ErrInvalidSignature = errors.New("invalid signature")
)

// DecodePublicKey parses an untrusted base58 string into a 32-byte key.
func DecodePublicKey(s string) (common.PublicKey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(data) != entities.PublicKeySize {
		return common.PublicKey{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPublicKey, len(data), entities.PublicKeySize)
	}
	return common.PublicKeyFromBytes(data), nil
}

// DecodeSecret parses a base58 secret (seed || public key). A base58 failure
// wraps ErrInvalidEncoding, a wrong length wraps ErrInvalidSecret.
func DecodeSecret(s string) ([]byte, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(data) != entities.SecretSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecret, len(data), entities.SecretSize)
	}
	return data, nil
}

// DecodeSignature parses a base64 signature. A base64 failure wraps
// ErrInvalidEncoding, a wrong length wraps ErrInvalidSignature.
func DecodeSignature(s string) (entities.Signature, error) {
	data, err := DecodeBase64(s)
	if err != nil {
		return entities.Signature{}, err
	}
	if len(data) != entities.SignatureSize {
		return entities.Signature{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSignature, len(data), entities.SignatureSize)
	}
	var sig entities.Signature
	copy(sig[:], data)
	return sig, nil
}

func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}
