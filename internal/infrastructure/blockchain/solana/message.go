package sdk

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/whiteelite/ixservice/internal/domain/entities"
)

// AccountFromSecret rebuilds an account from seed || public key and rejects
// secrets whose public half does not belong to the seed.
func AccountFromSecret(secret []byte) (types.Account, error) {
	if len(secret) != entities.SecretSize {
		return types.Account{}, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecret, len(secret), entities.SecretSize)
	}
	account, err := types.AccountFromBytes(secret)
	if err != nil {
		return types.Account{}, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}
	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
		return types.Account{}, fmt.Errorf("%w: public key does not match seed", ErrInvalidSecret)
	}
	return account, nil
}

// SignMessage signs the raw message bytes with the given secret.
func (c *Client) SignMessage(message []byte, secret []byte) (entities.SignedMessage, error) {
	account, err := AccountFromSecret(secret)
	if err != nil {
		return entities.SignedMessage{}, err
	}
	var sig entities.Signature
	copy(sig[:], ed25519.Sign(account.PrivateKey, message))
	return entities.SignedMessage{Signature: sig, PublicKey: account.PublicKey}, nil
}

// VerifyMessage reports whether signature is valid for message under publicKey.
// A well-formed signature that does not match is not an error.
func (c *Client) VerifyMessage(message []byte, signature entities.Signature, publicKey entities.PublicKey) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey.Bytes()), message, signature[:])
}
