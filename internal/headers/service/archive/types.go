package archive

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

type (
	Repository interface {
		InsertChainEvents(ctx context.Context, events []model.Reorg) error
		InsertChainEventPositions(ctx context.Context, events []model.Reorg) error
	}
	Metrics interface {
		ObserveQueued()
		ObserveDropped()
	}
)
