package sdk

import (
	"github.com/blocto/solana-go-sdk/types"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	"github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana/mappers"
)

// CreateAccount generates a fresh ed25519 key-pair. Nothing is retained.
func (c *Client) CreateAccount() entities.KeyPair {
	return mappers.FromAccount(types.NewAccount())
}
