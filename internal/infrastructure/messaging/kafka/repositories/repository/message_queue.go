package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/ixservice/internal/domain/repositories"
	shared "github.com/whiteelite/ixservice/pkg/shared/domain/entities"
	"go.uber.org/zap"
)

const defaultDrainTimeout = 3 * time.Second

// KafkaMessageQueueParams implements repositories.MessageQueueParams
// and provides configuration for initializing KafkaMessageQueue.
type KafkaMessageQueueParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	ToProduceBufSize int
	DrainTimeout     time.Duration
	Logger           *zap.Logger
}

func (p KafkaMessageQueueParams) Get() map[string]any {
	return map[string]any{
		"brokers":         p.Brokers,
		"topic":           p.Topic,
		"toProduceBuffer": p.ToProduceBufSize,
		"drainTimeout":    p.DrainTimeout.String(),
	}
}

// KafkaMessageQueue is a produce-only queue. Entities sent on
// ToProduceBuffered are written to the topic by a single worker.
type KafkaMessageQueue struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	once   sync.Once
	stop   chan struct{}

	writer       *sdk.Writer
	drainTimeout time.Duration
	logger       *zap.Logger

	// External facing channel (Entity based). It is never closed, so a late
	// send after Close fills the buffer instead of panicking.
	toProduce chan shared.Entity
	// Internal bridge (generic pointer channel)
	prodBucket chan *shared.Entity
}

// InitializeKafkaMessageQueue creates a KafkaMessageQueue using params.
func InitializeKafkaMessageQueue(params domainrepos.MessageQueueParams) (domainrepos.MessageQueueProducer, error) {
	typed, ok := params.(KafkaMessageQueueParams)
	if !ok {
		return nil, errors.New("kafka message queue requires KafkaMessageQueueParams")
	}
	if err := ValidateKafkaParams(typed); err != nil {
		return nil, err
	}

	writer := &sdk.Writer{
		Addr:         sdk.TCP(typed.Brokers...),
		Topic:        typed.Topic,
		RequiredAcks: sdk.RequireOne,
		Balancer:     &sdk.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	q := newKafkaMessageQueue(typed, writer, writer)
	q.logger.Info("kafka message queue started", zap.Any("params", params.Get()))
	return q, nil
}

func newKafkaMessageQueue(typed KafkaMessageQueueParams, writer messageWriter, closer *sdk.Writer) *KafkaMessageQueue {
	// defaults
	if typed.ToProduceBufSize <= 0 {
		typed.ToProduceBufSize = 1024
	}
	if typed.DrainTimeout <= 0 {
		typed.DrainTimeout = defaultDrainTimeout
	}
	if typed.Logger == nil {
		typed.Logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &KafkaMessageQueue{
		ctx:          ctx,
		cancel:       cancel,
		wg:           &sync.WaitGroup{},
		stop:         make(chan struct{}),
		writer:       closer,
		drainTimeout: typed.DrainTimeout,
		logger:       typed.Logger,
		toProduce:    make(chan shared.Entity, typed.ToProduceBufSize),
		prodBucket:   make(chan *shared.Entity, typed.ToProduceBufSize),
	}
	q.startWorkers(writer)
	return q
}

func (q *KafkaMessageQueue) startWorkers(writer messageWriter) {
	q.wg.Add(1)
	go StartProducer[shared.Entity](q.ctx, q.wg, writer, q.prodBucket, q.logger)

	// Bridge external toProduce -> prodBucket (*Entity). On stop it forwards
	// what is already buffered, then closes prodBucket so the producer exits.
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(q.prodBucket)
		forward := func(e shared.Entity) bool {
			// allocate a new variable to take address
			entity := e
			select {
			case q.prodBucket <- &entity:
				return true
			case <-q.ctx.Done():
				return false
			}
		}
		for {
			select {
			case e := <-q.toProduce:
				if !forward(e) {
					return
				}
			case <-q.stop:
				for {
					select {
					case e := <-q.toProduce:
						if !forward(e) {
							return
						}
					default:
						return
					}
				}
			}
		}
	}()
}

// ToProduceBuffered exposes the producer channel of entities.
func (q *KafkaMessageQueue) ToProduceBuffered() chan<- shared.Entity {
	return q.toProduce
}

// Close stops accepting entities, drains what is buffered for up to the drain
// timeout and closes the writer. Entities sent after Close are never written.
func (q *KafkaMessageQueue) Close() {
	q.once.Do(func() {
		close(q.stop)

		drained := make(chan struct{})
		go func() {
			q.wg.Wait()
			close(drained)
		}()
		select {
		case <-drained:
		case <-time.After(q.drainTimeout):
			q.logger.Warn("audit queue drain timed out, dropping buffered events")
			q.cancel()
			<-drained
		}
		q.cancel()

		if q.writer != nil {
			if err := q.writer.Close(); err != nil {
				q.logger.Warn("audit writer close failed", zap.Error(err))
			}
		}
	})
}

// Compile-time assertion to ensure interface conformance
var _ domainrepos.MessageQueueProducer = (*KafkaMessageQueue)(nil)
var _ domainrepos.InitializeMessageQueue = InitializeKafkaMessageQueue

// Helper to ensure required params are set.
func ValidateKafkaParams(p KafkaMessageQueueParams) error {
	if len(p.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if p.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}
