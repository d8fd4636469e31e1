package sdk

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/system"
	sdktoken "github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	"github.com/whiteelite/ixservice/internal/domain/repositories"
	"github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana/mappers"
	"github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana/models"
)

// Client builds unsigned instructions and handles ephemeral keys. It holds no
// state and never talks to a cluster, so a zero value is ready to use.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

var (
	_ repositories.InstructionBuilder = (*Client)(nil)
	_ repositories.Identity           = (*Client)(nil)
)

// InitializeMint builds token InitializeMint without a freeze authority.
func (c *Client) InitializeMint(params entities.InitializeMintParams) (entities.InstructionDescriptor, error) {
	data, err := borsh.Serialize(models.InitializeMintData{
		Instruction:   uint8(sdktoken.InstructionInitializeMint),
		Decimals:      params.Decimals,
		MintAuthority: params.MintAuthority,
	})
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("serialize initialize mint: %w", err)
	}

	return mappers.FromInstruction(types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: params.Mint, IsSigner: false, IsWritable: true},
			{PubKey: common.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		},
		Data: data,
	}), nil
}

// MintTo builds a single-authority token MintTo. A zero amount is accepted.
func (c *Client) MintTo(params entities.MintToParams) (entities.InstructionDescriptor, error) {
	data, err := borsh.Serialize(models.AmountData{
		Instruction: uint8(sdktoken.InstructionMintTo),
		Amount:      params.Amount,
	})
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("serialize mint to: %w", err)
	}

	return mappers.FromInstruction(types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: params.Mint, IsSigner: false, IsWritable: true},
			{PubKey: params.Destination, IsSigner: false, IsWritable: true},
			{PubKey: params.Authority, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}), nil
}

// TransferSOL builds a system program Transfer.
func (c *Client) TransferSOL(params entities.TransferSOLParams) (entities.InstructionDescriptor, error) {
	data, err := borsh.Serialize(models.SystemTransferData{
		Instruction: uint32(system.InstructionTransfer),
		Lamports:    params.Lamports,
	})
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("serialize system transfer: %w", err)
	}

	return mappers.FromInstruction(types.Instruction{
		ProgramID: common.SystemProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: params.From, IsSigner: true, IsWritable: true},
			{PubKey: params.To, IsSigner: false, IsWritable: true},
		},
		Data: data,
	}), nil
}

// TransferToken builds a token Transfer between the associated token accounts
// of owner and destination for mint, signed by owner.
func (c *Client) TransferToken(params entities.TransferTokenParams) (entities.InstructionDescriptor, error) {
	source, err := c.DeriveAssociatedTokenAddress(params.Owner, params.Mint)
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("derive source ata: %w", err)
	}
	destination, err := c.DeriveAssociatedTokenAddress(params.Destination, params.Mint)
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("derive destination ata: %w", err)
	}

	data, err := borsh.Serialize(models.AmountData{
		Instruction: uint8(sdktoken.InstructionTransfer),
		Amount:      params.Amount,
	})
	if err != nil {
		return entities.InstructionDescriptor{}, fmt.Errorf("serialize token transfer: %w", err)
	}

	return mappers.FromInstruction(types.Instruction{
		ProgramID: common.TokenProgramID,
		Accounts: []types.AccountMeta{
			{PubKey: source, IsSigner: false, IsWritable: true},
			{PubKey: destination, IsSigner: false, IsWritable: true},
			{PubKey: params.Owner, IsSigner: true, IsWritable: false},
		},
		Data: data,
	}), nil
}

// DeriveAssociatedTokenAddress derives ATA PDA for owner+mint
func (c *Client) DeriveAssociatedTokenAddress(owner, mint common.PublicKey) (common.PublicKey, error) {
	seeds := [][]byte{
		owner.Bytes(),
		common.TokenProgramID.Bytes(),
		mint.Bytes(),
	}
	pda, _, err := common.FindProgramAddress(seeds, common.SPLAssociatedTokenAccountProgramID)
	if err != nil {
		return common.PublicKey{}, err
	}
	return pda, nil
}
