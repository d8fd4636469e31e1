package repositories

import (
	"github.com/whiteelite/ixservice/internal/domain/entities"
	shared "github.com/whiteelite/ixservice/pkg/shared/domain/entities"
)

// InstructionBuilder produces unsigned instructions. Implementations never
// touch the network.
type InstructionBuilder interface {
	InitializeMint(params entities.InitializeMintParams) (entities.InstructionDescriptor, error)
	MintTo(params entities.MintToParams) (entities.InstructionDescriptor, error)
	TransferSOL(params entities.TransferSOLParams) (entities.InstructionDescriptor, error)
	TransferToken(params entities.TransferTokenParams) (entities.InstructionDescriptor, error)
}

type Identity interface {
	CreateAccount() entities.KeyPair
	SignMessage(message []byte, secret []byte) (entities.SignedMessage, error)
	VerifyMessage(message []byte, signature entities.Signature, publicKey entities.PublicKey) bool
}

type MessageQueueParams interface {
	Get() map[string]any
}

type InitializeMessageQueue func(MessageQueueParams) (MessageQueueProducer, error)

type MessageQueueProducer interface {
	ToProduceBuffered() chan<- shared.Entity
	Close()
}
