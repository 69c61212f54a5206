package usecase

import (
	"context"
	"time"

	"github.com/ZachR72/Lineup-Maker/internal/generator"
	"github.com/ZachR72/Lineup-Maker/internal/repository"
	"github.com/ZachR72/Lineup-Maker/internal/suggest"
	"github.com/ZachR72/Lineup-Maker/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	LineupUsecaseInterface
	SessionUsecaseInterface
	SuggestUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	gen generator.Generator,
	suggester suggest.Suggester,
	timeout time.Duration,
	autosaveDelay time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, gen, suggester, timeout, autosaveDelay)
}
