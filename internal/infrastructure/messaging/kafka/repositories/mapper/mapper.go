package mapper

import (
	"crypto/sha256"
	"encoding/base64"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/whiteelite/ixservice/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/ixservice/pkg/shared/domain/entities"
)

// ToMessage wraps entity in an envelope keyed by the digest of its content.
func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(serialized)

	return &models.Message{
		ID:      uuid.New(),
		Content: string(serialized),
		Hash:    base64.StdEncoding.EncodeToString(sum[:]),
	}, nil
}

func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}
