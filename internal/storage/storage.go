package storage

import (
	"context"

	"github.com/xaenox/memedb/internal/models"
)

// FeedbackStore is the append-only log of tag corrections. Memes themselves
// live in the external backend; feedback is the only state this service owns.
type FeedbackStore interface {
	Append(ctx context.Context, feedback *models.Feedback) error
	Recent(ctx context.Context, limit int) ([]*models.Feedback, error)
	All(ctx context.Context) ([]*models.Feedback, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
