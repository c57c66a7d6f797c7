package repos

import (
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/data/repos/codes"
	"github.com/aquabase/wellreg-backend/internal/data/repos/registry"
	"github.com/aquabase/wellreg-backend/internal/data/repos/wells"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/stacking"
)

type SubmissionRepo = wells.SubmissionRepo
type WellRepo = wells.WellRepo
type WellSearch = wells.WellSearch

type CodeRepo = codes.CodeRepo

type PersonRepo = registry.PersonRepo
type PersonSearch = registry.PersonSearch
type OrganizationRepo = registry.OrganizationRepo

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return wells.NewSubmissionRepo(db, baseLog)
}

func NewWellRepo(db *gorm.DB, baseLog *logger.Logger) WellRepo {
	return wells.NewWellRepo(db, baseLog)
}

func NewStackingRepo(db *gorm.DB, submissions SubmissionRepo, wellRepo WellRepo, baseLog *logger.Logger) stacking.Repository {
	return wells.NewStackingRepo(db, submissions, wellRepo, baseLog)
}

func NewCodeRepo(db *gorm.DB, baseLog *logger.Logger) CodeRepo {
	return codes.NewCodeRepo(db, baseLog)
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return registry.NewPersonRepo(db, baseLog)
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	return registry.NewOrganizationRepo(db, baseLog)
}
