package ports

import (
	"context"

	"github.com/rachmurali02/social-app/internal/domain"
)

type Recommender interface {
	Recommend(ctx context.Context, q domain.RecommendationQuery) ([]domain.Option, error)
}
