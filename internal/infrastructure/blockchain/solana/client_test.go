package sdk_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
)

const (
	systemProgram = "11111111111111111111111111111111"
	tokenProgram  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	ataProgram    = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	rentSysvar    = "SysvarRent111111111111111111111111111111111"
)

func newKey(t *testing.T) common.PublicKey {
	t.Helper()
	key, err := sdk.DecodePublicKey(sdk.NewClient().CreateAccount().PublicKey)
	if err != nil {
		t.Fatalf("decode generated key: %v", err)
	}
	return key
}

func assertAccount(t *testing.T, got entities.AccountReference, key common.PublicKey, signer, writable bool) {
	t.Helper()
	if got.PublicKey != key {
		t.Fatalf("account key: got %s, want %s", got.PublicKey.ToBase58(), key.ToBase58())
	}
	if got.IsSigner != signer || got.IsWritable != writable {
		t.Fatalf("account %s flags: signer=%v writable=%v, want signer=%v writable=%v",
			key.ToBase58(), got.IsSigner, got.IsWritable, signer, writable)
	}
}

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func TestInitializeMint(t *testing.T) {
	c := sdk.NewClient()
	mint, authority := newKey(t), newKey(t)

	ix, err := c.InitializeMint(entities.InitializeMintParams{Mint: mint, MintAuthority: authority, Decimals: 6})
	if err != nil {
		t.Fatalf("initialize mint: %v", err)
	}
	if ix.ProgramID.ToBase58() != tokenProgram {
		t.Fatalf("unexpected program: %s", ix.ProgramID.ToBase58())
	}
	if len(ix.Accounts) != 2 {
		t.Fatalf("unexpected account count: %d", len(ix.Accounts))
	}
	assertAccount(t, ix.Accounts[0], mint, false, true)
	assertAccount(t, ix.Accounts[1], common.PublicKeyFromString(rentSysvar), false, false)

	want := append([]byte{0, 6}, authority.Bytes()...)
	want = append(want, 0) // no freeze authority
	if !bytes.Equal(ix.Data, want) {
		t.Fatalf("data mismatch:\n got %x\nwant %x", ix.Data, want)
	}
}

func TestMintTo(t *testing.T) {
	c := sdk.NewClient()
	mint, dest, auth := newKey(t), newKey(t), newKey(t)

	for _, amount := range []uint64{0, 1, 1_000_000, ^uint64(0)} {
		ix, err := c.MintTo(entities.MintToParams{Mint: mint, Destination: dest, Authority: auth, Amount: amount})
		if err != nil {
			t.Fatalf("mint to %d: %v", amount, err)
		}
		if ix.ProgramID.ToBase58() != tokenProgram {
			t.Fatalf("unexpected program: %s", ix.ProgramID.ToBase58())
		}
		if len(ix.Accounts) != 3 {
			t.Fatalf("unexpected account count: %d", len(ix.Accounts))
		}
		assertAccount(t, ix.Accounts[0], mint, false, true)
		assertAccount(t, ix.Accounts[1], dest, false, true)
		assertAccount(t, ix.Accounts[2], auth, true, false)

		want := append([]byte{7}, u64le(amount)...)
		if !bytes.Equal(ix.Data, want) {
			t.Fatalf("data mismatch: got %x, want %x", ix.Data, want)
		}
	}
}

func TestTransferSOL(t *testing.T) {
	c := sdk.NewClient()
	from, to := newKey(t), newKey(t)

	ix, err := c.TransferSOL(entities.TransferSOLParams{From: from, To: to, Lamports: 1000})
	if err != nil {
		t.Fatalf("transfer sol: %v", err)
	}
	if ix.ProgramID.ToBase58() != systemProgram {
		t.Fatalf("unexpected program: %s", ix.ProgramID.ToBase58())
	}
	if len(ix.Accounts) != 2 {
		t.Fatalf("unexpected account count: %d", len(ix.Accounts))
	}
	assertAccount(t, ix.Accounts[0], from, true, true)
	assertAccount(t, ix.Accounts[1], to, false, true)

	want := append([]byte{2, 0, 0, 0}, u64le(1000)...)
	if !bytes.Equal(ix.Data, want) {
		t.Fatalf("data mismatch: got %x, want %x", ix.Data, want)
	}
}

func TestTransferToken(t *testing.T) {
	c := sdk.NewClient()
	owner, dest, mint := newKey(t), newKey(t), newKey(t)

	ix, err := c.TransferToken(entities.TransferTokenParams{Owner: owner, Destination: dest, Mint: mint, Amount: 42})
	if err != nil {
		t.Fatalf("transfer token: %v", err)
	}
	if ix.ProgramID.ToBase58() != tokenProgram {
		t.Fatalf("unexpected program: %s", ix.ProgramID.ToBase58())
	}

	ataProgramID := common.PublicKeyFromString(ataProgram)
	tokenProgramID := common.PublicKeyFromString(tokenProgram)
	srcATA, _, err := common.FindProgramAddress([][]byte{owner.Bytes(), tokenProgramID.Bytes(), mint.Bytes()}, ataProgramID)
	if err != nil {
		t.Fatalf("find source ata: %v", err)
	}
	dstATA, _, err := common.FindProgramAddress([][]byte{dest.Bytes(), tokenProgramID.Bytes(), mint.Bytes()}, ataProgramID)
	if err != nil {
		t.Fatalf("find destination ata: %v", err)
	}

	if len(ix.Accounts) != 3 {
		t.Fatalf("unexpected account count: %d", len(ix.Accounts))
	}
	assertAccount(t, ix.Accounts[0], srcATA, false, true)
	assertAccount(t, ix.Accounts[1], dstATA, false, true)
	assertAccount(t, ix.Accounts[2], owner, true, false)

	want := append([]byte{3}, u64le(42)...)
	if !bytes.Equal(ix.Data, want) {
		t.Fatalf("data mismatch: got %x, want %x", ix.Data, want)
	}
}

func TestDeriveAssociatedTokenAddress_Deterministic(t *testing.T) {
	c := sdk.NewClient()
	owner, mint, other := newKey(t), newKey(t), newKey(t)

	a, err := c.DeriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	b, err := c.DeriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a != b {
		t.Fatalf("derivation is not deterministic: %s != %s", a.ToBase58(), b.ToBase58())
	}
	d, err := c.DeriveAssociatedTokenAddress(other, mint)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a == d {
		t.Fatalf("different owners derived the same address")
	}
}

func TestDeriveAssociatedTokenAddress_KnownVector(t *testing.T) {
	owner := common.PublicKeyFromString("FVen3X669xLzsi6N2V91DoiyzHzg1uAgqiT8jZ9nS96Z")
	mint := common.PublicKeyFromString("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	const want = "HU2S9ByyqbnCD2SVfvr9qoLtDTtyTnMZoMaw1xpr6cTb"

	got, err := sdk.NewClient().DeriveAssociatedTokenAddress(owner, mint)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got.ToBase58() != want {
		t.Fatalf("ata: got %s, want %s", got.ToBase58(), want)
	}

	// owner and mint swapped land elsewhere
	swapped, err := sdk.NewClient().DeriveAssociatedTokenAddress(mint, owner)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if swapped.ToBase58() == want {
		t.Fatalf("seed order is not significant")
	}

	ix, err := sdk.NewClient().TransferToken(entities.TransferTokenParams{Owner: owner, Destination: owner, Mint: mint, Amount: 1})
	if err != nil {
		t.Fatalf("transfer token: %v", err)
	}
	if ix.Accounts[0].PublicKey.ToBase58() != want || ix.Accounts[1].PublicKey.ToBase58() != want {
		t.Fatalf("transfer accounts do not use the derived ata: %s, %s",
			ix.Accounts[0].PublicKey.ToBase58(), ix.Accounts[1].PublicKey.ToBase58())
	}
}
