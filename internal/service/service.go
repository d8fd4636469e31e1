package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/whiteelite/ixservice/internal/domain/apperrors"
	"github.com/whiteelite/ixservice/internal/domain/entities"
	"github.com/whiteelite/ixservice/internal/domain/repositories"
	sdk "github.com/whiteelite/ixservice/internal/infrastructure/blockchain/solana"
	"go.uber.org/zap"
)

// Service runs validation, decoding, building and encoding for every endpoint.
// It keeps no per-request state.
type Service struct {
	builder  repositories.InstructionBuilder
	identity repositories.Identity
	audit    repositories.MessageQueueProducer
	logger   *zap.Logger
}

type Option func(*Service)

// WithAudit publishes an InstructionBuilt event after every successful build.
func WithAudit(q repositories.MessageQueueProducer) Option {
	return func(s *Service) { s.audit = q }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func New(builder repositories.InstructionBuilder, identity repositories.Identity, opts ...Option) *Service {
	s := &Service{
		builder:  builder,
		identity: identity,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GenerateKeyPair(_ context.Context) KeypairResponse {
	kp := s.identity.CreateAccount()
	return KeypairResponse{Pubkey: kp.PublicKey, Secret: kp.Secret}
}

func (s *Service) CreateToken(ctx context.Context, req CreateTokenRequest) (*InstructionResponse, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}
	ix, err := s.builder.InitializeMint(params)
	if err != nil {
		return nil, s.internal(ctx, "Instruction creation failed", err)
	}
	s.publish(ctx, entities.InstructionKindInitializeMint, ix)
	return toInstructionResponse(ix), nil
}

func (s *Service) MintToken(ctx context.Context, req MintTokenRequest) (*InstructionResponse, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}
	ix, err := s.builder.MintTo(params)
	if err != nil {
		return nil, s.internal(ctx, "Failed to create mint instruction", err)
	}
	s.publish(ctx, entities.InstructionKindMintTo, ix)
	return toInstructionResponse(ix), nil
}

func (s *Service) SignMessage(_ context.Context, req SignMessageRequest) (*SignMessageResponse, error) {
	secret, err := req.validate()
	if err != nil {
		return nil, err
	}
	signed, err := s.identity.SignMessage([]byte(req.Message), secret)
	if err != nil {
		return nil, &apperrors.Error{Kind: apperrors.KindBadRequest, Message: "Invalid secret key format", Cause: err}
	}
	return &SignMessageResponse{
		Signature: sdk.EncodeBase64(signed.Signature[:]),
		PublicKey: signed.PublicKey.ToBase58(),
		Message:   req.Message,
	}, nil
}

// VerifyMessage treats a well-formed signature that does not match as a
// successful negative result, never as an error.
func (s *Service) VerifyMessage(_ context.Context, req VerifyMessageRequest) (*VerifyMessageResponse, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}
	return &VerifyMessageResponse{
		Valid:   s.identity.VerifyMessage([]byte(req.Message), params.signature, params.publicKey),
		Message: req.Message,
		Pubkey:  req.Pubkey,
	}, nil
}

func (s *Service) SendSOL(ctx context.Context, req SendSOLRequest) (*SendSOLResponse, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}
	ix, err := s.builder.TransferSOL(params)
	if err != nil {
		return nil, s.internal(ctx, "Failed to create transfer instruction", err)
	}
	s.publish(ctx, entities.InstructionKindNativeTransfer, ix)

	accounts := make([]string, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, acc.PublicKey.ToBase58())
	}
	return &SendSOLResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}, nil
}

func (s *Service) SendToken(ctx context.Context, req SendTokenRequest) (*SendTokenResponse, error) {
	params, err := req.validate()
	if err != nil {
		return nil, err
	}
	ix, err := s.builder.TransferToken(params)
	if err != nil {
		return nil, s.internal(ctx, "Failed to create token transfer instruction", err)
	}
	s.publish(ctx, entities.InstructionKindTokenTransfer, ix)

	accounts := make([]AccountMetaSimple, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, AccountMetaSimple{
			Pubkey:   acc.PublicKey.ToBase58(),
			IsSigner: acc.IsSigner,
		})
	}
	return &SendTokenResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}, nil
}

func toInstructionResponse(ix entities.InstructionDescriptor) *InstructionResponse {
	accounts := make([]AccountMetaResponse, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, AccountMetaResponse{
			Pubkey:     acc.PublicKey.ToBase58(),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}
	return &InstructionResponse{
		ProgramID:       ix.ProgramID.ToBase58(),
		Accounts:        accounts,
		InstructionData: sdk.EncodeBase64(ix.Data),
	}
}

func (s *Service) internal(ctx context.Context, msg string, cause error) error {
	s.logger.Error(msg,
		zap.String("request_id", RequestIDFromContext(ctx)),
		zap.Error(cause),
	)
	return apperrors.Internal(msg, cause)
}

// publish never blocks the request; a full queue drops the event.
func (s *Service) publish(ctx context.Context, kind entities.InstructionKind, ix entities.InstructionDescriptor) {
	if s.audit == nil {
		return
	}
	accounts := make([]string, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, acc.PublicKey.ToBase58())
	}
	event := entities.InstructionBuilt{
		ID:        uuid.New(),
		RequestID: RequestIDFromContext(ctx),
		Kind:      kind,
		ProgramID: ix.ProgramID.ToBase58(),
		Accounts:  accounts,
		DataLen:   len(ix.Data),
		BuiltAt:   time.Now().UTC(),
	}
	select {
	case s.audit.ToProduceBuffered() <- event:
	default:
		s.logger.Warn("audit queue full, event dropped",
			zap.String("request_id", event.RequestID),
			zap.String("kind", string(kind)),
		)
	}
}
