package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

type WellService interface {
	GetWell(ctx context.Context, wellTagNumber int64) (*domain.Well, error)
	Search(ctx context.Context, q repos.WellSearch) ([]*domain.Well, error)
}

type wellService struct {
	db       *gorm.DB
	log      *logger.Logger
	wellRepo repos.WellRepo
}

func NewWellService(db *gorm.DB, baseLog *logger.Logger, wellRepo repos.WellRepo) WellService {
	serviceLog := baseLog.With("service", "WellService")
	return &wellService{db: db, log: serviceLog, wellRepo: wellRepo}
}

func (ws *wellService) GetWell(ctx context.Context, wellTagNumber int64) (*domain.Well, error) {
	well, err := ws.wellRepo.GetByTagNumber(ctx, nil, wellTagNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(404, "well_not_found", fmt.Errorf("well %d not found", wellTagNumber))
		}
		return nil, err
	}
	return well, nil
}

func (ws *wellService) Search(ctx context.Context, q repos.WellSearch) ([]*domain.Well, error) {
	return ws.wellRepo.Search(ctx, nil, q)
}
