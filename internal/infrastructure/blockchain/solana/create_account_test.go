package sdk_test

import (
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
)

// RFC 8032 section 7.1, test 1.
const (
	rfcSeedHex     = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfcPublicKey   = "FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z"
	rfcSecret      = "49W385L4rePHy6PAaQUovbD2aacgN4HsKXSMeUzRg4fmwXszN91JuMFrQRj3vMDpZuRF3ZknQBuRBoWQJEfXstMw"
	rfcEmptySigHex = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func TestCreateAccount_PublicKeyIsSecretTail(t *testing.T) {
	c := sdk.NewClient()
	for i := 0; i < 8; i++ {
		kp := c.CreateAccount()

		secret, err := sdk.DecodeSecret(kp.Secret)
		if err != nil {
			t.Fatalf("decode secret: %v", err)
		}
		pub, err := sdk.DecodePublicKey(kp.PublicKey)
		if err != nil {
			t.Fatalf("decode public key: %v", err)
		}
		if len(secret) != entities.SecretSize {
			t.Fatalf("secret length: got %d, want %d", len(secret), entities.SecretSize)
		}
		if string(secret[entities.PublicKeySize:]) != string(pub.Bytes()) {
			t.Fatalf("public key %s is not the tail of its secret", kp.PublicKey)
		}

		// the tail must also be what the seed derives, not just copied bytes
		acc, err := sdk.AccountFromSecret(secret)
		if err != nil {
			t.Fatalf("generated secret rejected: %v", err)
		}
		if acc.PublicKey != pub {
			t.Fatalf("seed derives %s, key-pair says %s", acc.PublicKey.ToBase58(), kp.PublicKey)
		}
	}
}

func TestAccountFromSecret_KnownVector(t *testing.T) {
	secret, err := sdk.DecodeSecret(rfcSecret)
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}
	seed, _ := hex.DecodeString(rfcSeedHex)
	if string(secret[:32]) != string(seed) {
		t.Fatalf("secret does not start with the seed")
	}

	acc, err := sdk.AccountFromSecret(secret)
	if err != nil {
		t.Fatalf("account from secret: %v", err)
	}
	if got := acc.PublicKey.ToBase58(); got != rfcPublicKey {
		t.Fatalf("public key: got %s, want %s", got, rfcPublicKey)
	}

	signed, err := sdk.NewClient().SignMessage(nil, secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if got := hex.EncodeToString(signed.Signature[:]); got != rfcEmptySigHex {
		t.Fatalf("signature: got %s, want %s", got, rfcEmptySigHex)
	}
}

func TestCreateAccount_Distinct(t *testing.T) {
	client := sdk.NewClient()

	a := client.CreateAccount()
	b := client.CreateAccount()
	if a.PublicKey == b.PublicKey || a.Secret == b.Secret {
		t.Fatalf("expected two distinct key-pairs")
	}
	if _, err := base58.Decode(a.Secret); err != nil {
		t.Fatalf("secret is not base58: %v", err)
	}
}
