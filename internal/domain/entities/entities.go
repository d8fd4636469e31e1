package entities

import (
	"time"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/google/uuid"
)

const (
	PublicKeySize = 32
	SignatureSize = 64
	SecretSize    = 64
)

type (
	// PublicKey identifies an account or a program.
	PublicKey = common.PublicKey
	Signature [SignatureSize]byte
)

// KeyPair is generated per request and never stored. Secret is the base58 form
// of private seed || public key.
type KeyPair struct {
	PublicKey string
	Secret    string
}

type AccountReference struct {
	PublicKey  PublicKey
	IsSigner   bool
	IsWritable bool
}

// InstructionDescriptor is an unsigned instruction. Account order is defined by
// the target program and must be preserved.
type InstructionDescriptor struct {
	ProgramID PublicKey
	Accounts  []AccountReference
	Data      []byte
}

type SignedMessage struct {
	Signature Signature
	PublicKey PublicKey
}

type InstructionKind string

const (
	InstructionKindInitializeMint InstructionKind = "initialize_mint"
	InstructionKindMintTo         InstructionKind = "mint_to"
	InstructionKindNativeTransfer InstructionKind = "native_transfer"
	InstructionKindTokenTransfer  InstructionKind = "token_transfer"
)

// InstructionBuilt is the audit record emitted after a successful build.
// It carries only public data.
type InstructionBuilt struct {
	ID        uuid.UUID       `json:"id"`
	RequestID string          `json:"requestId"`
	Kind      InstructionKind `json:"kind"`
	ProgramID string          `json:"programId"`
	Accounts  []string        `json:"accounts"`
	DataLen   int             `json:"dataLen"`
	BuiltAt   time.Time       `json:"builtAt"`
}

type InitializeMintParams struct {
	Mint          PublicKey
	MintAuthority PublicKey
	Decimals      uint8
}

type MintToParams struct {
	Mint        PublicKey
	Destination PublicKey
	Authority   PublicKey
	Amount      uint64
}

type TransferSOLParams struct {
	From     PublicKey
	To       PublicKey
	Lamports uint64
}

type TransferTokenParams struct {
	Owner       PublicKey
	Destination PublicKey
	Mint        PublicKey
	Amount      uint64
}
