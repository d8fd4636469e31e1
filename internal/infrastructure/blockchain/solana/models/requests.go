package models

// Instruction payload layouts. Fields are serialized in order as fixed-width
// little-endian values; a nil pointer encodes an absent option as a single 0.

// InitializeMintData is the token program InitializeMint payload.
type InitializeMintData struct {
	Instruction     uint8
	Decimals        uint8
	MintAuthority   [32]byte
	FreezeAuthority *[32]byte
}

// AmountData covers token instructions that carry only an amount
// (MintTo, Transfer).
type AmountData struct {
	Instruction uint8
	Amount      uint64
}

// SystemTransferData is the system program Transfer payload.
type SystemTransferData struct {
	Instruction uint32
	Lamports    uint64
}
