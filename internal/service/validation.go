package service

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/whiteelite/ixservice/internal/domain/apperrors"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
)

var (
	maxUint64 = decimal.RequireFromString("18446744073709551615")
	maxUint8  = decimal.NewFromInt(math.MaxUint8)
)

// maxIntegerDigits is the length of the largest u64.
const maxIntegerDigits = 20

type field struct {
	name  string
	value string
}

func str(name, value string) field {
	return field{name: name, value: value}
}

func num(name string, value Integer) field {
	return field{name: name, value: value.String()}
}

// requireFields reports every blank field at once; it is still a single check.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperrors.BadRequestf("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseUint64(name string, n Integer) (uint64, error) {
	v, err := parseUnsigned(name, n, maxUint64)
	if err != nil {
		return 0, err
	}
	return v.BigInt().Uint64(), nil
}

func parseUint8(name string, n Integer) (uint8, error) {
	v, err := parseUnsigned(name, n, maxUint8)
	if err != nil {
		return 0, err
	}
	return uint8(v.IntPart()), nil
}

// parseUnsigned accepts only plain decimal digits. Exponent forms never reach
// decimal, so the work per field is bounded by maxIntegerDigits.
func parseUnsigned(name string, n Integer, limit decimal.Decimal) (decimal.Decimal, error) {
	invalid := apperrors.BadRequestf("Invalid %s: must be an integer between 0 and %s", name, limit.String())

	raw := n.String()
	if len(raw) > maxIntegerDigits || !isDigits(raw) {
		return decimal.Decimal{}, invalid
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.GreaterThan(limit) {
		return decimal.Decimal{}, invalid
	}
	return v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func requirePositive(name string, v uint64) error {
	if v == 0 {
		return apperrors.BadRequestf("%s must be greater than 0", name)
	}
	return nil
}

// decodeKey maps any codec failure to the endpoint-specific message.
func decodeKey(value, message string) (entities.PublicKey, error) {
	key, err := sdk.DecodePublicKey(value)
	if err != nil {
		return entities.PublicKey{}, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: message, Cause: err}
	}
	return key, nil
}

func decodeSecret(value string) ([]byte, error) {
	secret, err := sdk.DecodeSecret(value)
	switch {
	case errors.Is(err, sdk.ErrInvalidEncoding):
		return nil, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: "Invalid base58 secret key", Cause: err}
	case err != nil:
		return nil, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: "Invalid secret key format", Cause: err}
	}
	return secret, nil
}

func decodeSignature(value string) (entities.Signature, error) {
	sig, err := sdk.DecodeSignature(value)
	switch {
	case errors.Is(err, sdk.ErrInvalidEncoding):
		return entities.Signature{}, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: "Invalid base64 signature", Cause: err}
	case err != nil:
		return entities.Signature{}, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: "Invalid signature format", Cause: err}
	}
	return sig, nil
}

func (r CreateTokenRequest) validate() (entities.InitializeMintParams, error) {
	if err := requireFields(str("mint", r.Mint), str("mintAuthority", r.MintAuthority), num("decimals", r.Decimals)); err != nil {
		return entities.InitializeMintParams{}, err
	}
	decimals, err := parseUint8("decimals", r.Decimals)
	if err != nil {
		return entities.InitializeMintParams{}, err
	}
	mint, err := decodeKey(r.Mint, "Invalid mint pubkey")
	if err != nil {
		return entities.InitializeMintParams{}, err
	}
	authority, err := decodeKey(r.MintAuthority, "Invalid mintAuthority pubkey")
	if err != nil {
		return entities.InitializeMintParams{}, err
	}
	return entities.InitializeMintParams{Mint: mint, MintAuthority: authority, Decimals: decimals}, nil
}

// validate accepts amount 0: minting zero is left to the program.
func (r MintTokenRequest) validate() (entities.MintToParams, error) {
	if err := requireFields(str("mint", r.Mint), str("destination", r.Destination), str("authority", r.Authority), num("amount", r.Amount)); err != nil {
		return entities.MintToParams{}, err
	}
	amount, err := parseUint64("amount", r.Amount)
	if err != nil {
		return entities.MintToParams{}, err
	}
	mint, err := decodeKey(r.Mint, "Invalid mint pubkey")
	if err != nil {
		return entities.MintToParams{}, err
	}
	destination, err := decodeKey(r.Destination, "Invalid destination pubkey")
	if err != nil {
		return entities.MintToParams{}, err
	}
	authority, err := decodeKey(r.Authority, "Invalid authority pubkey")
	if err != nil {
		return entities.MintToParams{}, err
	}
	return entities.MintToParams{Mint: mint, Destination: destination, Authority: authority, Amount: amount}, nil
}

func (r SignMessageRequest) validate() ([]byte, error) {
	if err := requireFields(str("message", r.Message), str("secret", r.Secret)); err != nil {
		return nil, err
	}
	return decodeSecret(r.Secret)
}

type verifyParams struct {
	signature entities.Signature
	publicKey entities.PublicKey
}

func (r VerifyMessageRequest) validate() (verifyParams, error) {
	if err := requireFields(str("message", r.Message), str("signature", r.Signature), str("pubkey", r.Pubkey)); err != nil {
		return verifyParams{}, err
	}
	pub, err := decodeKey(r.Pubkey, "Invalid public key")
	if err != nil {
		return verifyParams{}, err
	}
	sig, err := decodeSignature(r.Signature)
	if err != nil {
		return verifyParams{}, err
	}
	return verifyParams{signature: sig, publicKey: pub}, nil
}

func (r SendSOLRequest) validate() (entities.TransferSOLParams, error) {
	if err := requireFields(str("from", r.From), str("to", r.To), num("lamports", r.Lamports)); err != nil {
		return entities.TransferSOLParams{}, err
	}
	lamports, err := parseUint64("lamports", r.Lamports)
	if err != nil {
		return entities.TransferSOLParams{}, err
	}
	if err := requirePositive("lamports", lamports); err != nil {
		return entities.TransferSOLParams{}, err
	}
	from, err := decodeKey(r.From, "Invalid 'from' address")
	if err != nil {
		return entities.TransferSOLParams{}, err
	}
	to, err := decodeKey(r.To, "Invalid 'to' address")
	if err != nil {
		return entities.TransferSOLParams{}, err
	}
	return entities.TransferSOLParams{From: from, To: to, Lamports: lamports}, nil
}

func (r SendTokenRequest) validate() (entities.TransferTokenParams, error) {
	if err := requireFields(str("destination", r.Destination), str("mint", r.Mint), str("owner", r.Owner), num("amount", r.Amount)); err != nil {
		return entities.TransferTokenParams{}, err
	}
	amount, err := parseUint64("amount", r.Amount)
	if err != nil {
		return entities.TransferTokenParams{}, err
	}
	if err := requirePositive("amount", amount); err != nil {
		return entities.TransferTokenParams{}, err
	}
	owner, err := decodeKey(r.Owner, "Invalid owner pubkey")
	if err != nil {
		return entities.TransferTokenParams{}, err
	}
	destination, err := decodeKey(r.Destination, "Invalid destination pubkey")
	if err != nil {
		return entities.TransferTokenParams{}, err
	}
	mint, err := decodeKey(r.Mint, "Invalid mint pubkey")
	if err != nil {
		return entities.TransferTokenParams{}, err
	}
	return entities.TransferTokenParams{Owner: owner, Destination: destination, Mint: mint, Amount: amount}, nil
}
