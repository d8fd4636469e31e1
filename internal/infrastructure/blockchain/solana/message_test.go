package sdk_test

import (
	"errors"
	"testing"

	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	c := sdk.NewClient()
	acc := c.CreateAccount()
	secret, err := sdk.DecodeSecret(acc.Secret)
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}

	for _, msg := range []string{"hello", "Hello, Solana!", "ünïcödé ✓", " padded "} {
		signed, err := c.SignMessage([]byte(msg), secret)
		if err != nil {
			t.Fatalf("sign %q: %v", msg, err)
		}
		if signed.PublicKey.ToBase58() != acc.PublicKey {
			t.Fatalf("signer mismatch: %s != %s", signed.PublicKey.ToBase58(), acc.PublicKey)
		}
		if !c.VerifyMessage([]byte(msg), signed.Signature, signed.PublicKey) {
			t.Fatalf("signature over %q did not verify", msg)
		}
		if c.VerifyMessage([]byte(msg+"x"), signed.Signature, signed.PublicKey) {
			t.Fatalf("signature verified for a different message")
		}
	}
}

func TestVerify_WrongKey(t *testing.T) {
	c := sdk.NewClient()
	signer := c.CreateAccount()
	other := c.CreateAccount()

	secret, _ := sdk.DecodeSecret(signer.Secret)
	signed, err := c.SignMessage([]byte("msg"), secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	otherKey, err := sdk.DecodePublicKey(other.PublicKey)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.VerifyMessage([]byte("msg"), signed.Signature, otherKey) {
		t.Fatalf("signature verified under the wrong key")
	}
}

func TestAccountFromSecret_MismatchedHalves(t *testing.T) {
	c := sdk.NewClient()
	a, _ := sdk.DecodeSecret(c.CreateAccount().Secret)
	b, _ := sdk.DecodeSecret(c.CreateAccount().Secret)

	forged := append(append([]byte{}, a[:32]...), b[32:]...)
	if _, err := sdk.AccountFromSecret(forged); !errors.Is(err, sdk.ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret, got %v", err)
	}
	if _, err := c.SignMessage([]byte("x"), forged); !errors.Is(err, sdk.ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret from SignMessage, got %v", err)
	}
	if _, err := sdk.AccountFromSecret(a[:40]); !errors.Is(err, sdk.ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret for short secret, got %v", err)
	}
}
