package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	redisclient "github.com/aquabase/wellreg-backend/internal/clients/redis"
	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

const codeCacheTTL = 6 * time.Hour

// CodeService serves the reference code tables, with a read-through redis
// cache when one is configured. A nil cache just means every read hits
// postgres.
type CodeService interface {
	ActivityCodes(ctx context.Context) ([]domain.WellActivityCode, error)
	WellClassCodes(ctx context.Context) ([]domain.WellClassCode, error)
	WellStatusCodes(ctx context.Context) ([]domain.WellStatusCode, error)
	IntendedWaterUseCodes(ctx context.Context) ([]domain.IntendedWaterUseCode, error)
	DrillingMethodCodes(ctx context.Context) ([]domain.DrillingMethodCode, error)
	DevelopmentMethodCodes(ctx context.Context) ([]domain.DevelopmentMethodCode, error)
	DecommissionMethodCodes(ctx context.Context) ([]domain.DecommissionMethodCode, error)
}

type codeService struct {
	db       *gorm.DB
	log      *logger.Logger
	codeRepo repos.CodeRepo
	cache    redisclient.Cache
}

func NewCodeService(db *gorm.DB, baseLog *logger.Logger, codeRepo repos.CodeRepo, cache redisclient.Cache) CodeService {
	serviceLog := baseLog.With("service", "CodeService")
	return &codeService{db: db, log: serviceLog, codeRepo: codeRepo, cache: cache}
}

func cached[T any](ctx context.Context, cs *codeService, key string, load func(context.Context, *gorm.DB) ([]T, error)) ([]T, error) {
	if cs.cache != nil {
		var out []T
		hit, err := cs.cache.GetJSON(ctx, key, &out)
		if err != nil {
			cs.log.Warn("code cache read failed, falling back to postgres", "key", key, "error", err)
		} else if hit {
			return out, nil
		}
	}

	out, err := load(ctx, nil)
	if err != nil {
		return nil, err
	}
	if cs.cache != nil {
		if err := cs.cache.SetJSON(ctx, key, out, codeCacheTTL); err != nil {
			cs.log.Warn("code cache write failed", "key", key, "error", err)
		}
	}
	return out, nil
}

func (cs *codeService) ActivityCodes(ctx context.Context) ([]domain.WellActivityCode, error) {
	return cached(ctx, cs, "codes:activity", cs.codeRepo.ListActivityCodes)
}

func (cs *codeService) WellClassCodes(ctx context.Context) ([]domain.WellClassCode, error) {
	return cached(ctx, cs, "codes:well_class", cs.codeRepo.ListWellClassCodes)
}

func (cs *codeService) WellStatusCodes(ctx context.Context) ([]domain.WellStatusCode, error) {
	return cached(ctx, cs, "codes:well_status", cs.codeRepo.ListWellStatusCodes)
}

func (cs *codeService) IntendedWaterUseCodes(ctx context.Context) ([]domain.IntendedWaterUseCode, error) {
	return cached(ctx, cs, "codes:intended_water_use", cs.codeRepo.ListIntendedWaterUseCodes)
}

func (cs *codeService) DrillingMethodCodes(ctx context.Context) ([]domain.DrillingMethodCode, error) {
	return cached(ctx, cs, "codes:drilling_method", cs.codeRepo.ListDrillingMethodCodes)
}

func (cs *codeService) DevelopmentMethodCodes(ctx context.Context) ([]domain.DevelopmentMethodCode, error) {
	return cached(ctx, cs, "codes:development_method", cs.codeRepo.ListDevelopmentMethodCodes)
}

func (cs *codeService) DecommissionMethodCodes(ctx context.Context) ([]domain.DecommissionMethodCode, error) {
	return cached(ctx, cs, "codes:decommission_method", cs.codeRepo.ListDecommissionMethodCodes)
}
