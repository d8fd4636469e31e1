package service

import "strings"

// Integer holds the raw JSON text of a numeric field. Validation decides
// whether it is a plain unsigned integer, so quoted strings, exponents and
// fractions reach it intact and can be rejected with the field's name.
type Integer string

func (n *Integer) UnmarshalJSON(b []byte) error {
	*n = Integer(b)
	return nil
}

// String returns the trimmed raw text; JSON null reads as empty.
func (n Integer) String() string {
	s := strings.TrimSpace(string(n))
	if s == "null" {
		return ""
	}
	return s
}

// Requests.

type CreateTokenRequest struct {
	Mint          string      `json:"mint"`
	MintAuthority string      `json:"mintAuthority"`
	Decimals      Integer `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        string      `json:"mint"`
	Destination string      `json:"destination"`
	Authority   string      `json:"authority"`
	Amount      Integer `json:"amount"`
}

type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type SendSOLRequest struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Lamports Integer `json:"lamports"`
}

type SendTokenRequest struct {
	Destination string      `json:"destination"`
	Mint        string      `json:"mint"`
	Owner       string      `json:"owner"`
	Amount      Integer `json:"amount"`
}

// Responses.

type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

type AccountMetaResponse struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type InstructionResponse struct {
	ProgramID       string                `json:"programId"`
	Accounts        []AccountMetaResponse `json:"accounts"`
	InstructionData string                `json:"instructionData"`
}

type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
	Message   string `json:"message"`
}

type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

type SendSOLResponse struct {
	ProgramID       string   `json:"programId"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instructionData"`
}

type AccountMetaSimple struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

type SendTokenResponse struct {
	ProgramID       string              `json:"programId"`
	Accounts        []AccountMetaSimple `json:"accounts"`
	InstructionData string              `json:"instructionData"`
}
