package mappers

import (
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/whiteelite/ixservice/internal/domain/entities"
)

func FromAccount(account types.Account) entities.KeyPair {
	return entities.KeyPair{
		PublicKey: account.PublicKey.ToBase58(),
		Secret:    base58.Encode(account.PrivateKey),
	}
}

func FromInstruction(inst types.Instruction) entities.InstructionDescriptor {
	accounts := make([]entities.AccountReference, 0, len(inst.Accounts))
	for _, meta := range inst.Accounts {
		accounts = append(accounts, entities.AccountReference{
			PublicKey:  meta.PubKey,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return entities.InstructionDescriptor{
		ProgramID: inst.ProgramID,
		Accounts:  accounts,
		Data:      inst.Data,
	}
}
