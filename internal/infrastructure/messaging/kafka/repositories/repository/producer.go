package repository

import (
	"context"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	mapper "github.com/whiteelite/ixservice/internal/infrastructure/messaging/kafka/repositories/mapper"
	"go.uber.org/zap"
)

// messageWriter is the part of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
}

// StartProducer writes every entity from bucket until bucket is closed or ctx
// is cancelled. Failed writes are logged and skipped.
func StartProducer[T any](
	ctx context.Context,
	wg *sync.WaitGroup,
	writer messageWriter,
	bucket <-chan *T,
	logger *zap.Logger,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case request, ok := <-bucket:
			if !ok {
				return
			}
			if request == nil {
				continue
			}

			model, err := mapper.ToMessage(request)
			if err != nil {
				logger.Warn("audit event encode failed", zap.Error(err))
				continue
			}

			serialized, err := json.Marshal(model)
			if err != nil {
				logger.Warn("audit message encode failed", zap.Error(err))
				continue
			}
			err = writer.WriteMessages(ctx, sdk.Message{
				Key:   []byte(model.Hash),
				Value: serialized,
			})
			if err != nil {
				logger.Warn("audit message write failed", zap.String("id", model.ID.String()), zap.Error(err))
				continue
			}
		}
	}
}
