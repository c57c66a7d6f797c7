package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/apierr"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// RegistryService manages the register of qualified well drillers and pump
// installers.
type RegistryService interface {
	CreatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error)
	GetPerson(ctx context.Context, personGUID uuid.UUID) (*domain.Person, error)
	SearchPersons(ctx context.Context, q repos.PersonSearch) ([]*domain.Person, error)
	CreateOrganization(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	ListOrganizations(ctx context.Context, limit int) ([]*domain.Organization, error)
}

type registryService struct {
	db         *gorm.DB
	log        *logger.Logger
	personRepo repos.PersonRepo
	orgRepo    repos.OrganizationRepo
}

func NewRegistryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	personRepo repos.PersonRepo,
	orgRepo repos.OrganizationRepo,
) RegistryService {
	serviceLog := baseLog.With("service", "RegistryService")
	return &registryService{db: db, log: serviceLog, personRepo: personRepo, orgRepo: orgRepo}
}

func (rs *registryService) CreatePerson(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	if person.FirstName == "" || person.Surname == "" {
		return nil, apierr.NewValidation(errors.New("first_name and surname are required"))
	}
	if person.RegistryActivity != nil {
		switch *person.RegistryActivity {
		case domain.RegistryActivityDrilling, domain.RegistryActivityPumpInstall:
		default:
			return nil, apierr.NewValidation(fmt.Errorf("unknown registry activity %q", *person.RegistryActivity))
		}
	}
	return rs.personRepo.Create(ctx, nil, person)
}

func (rs *registryService) GetPerson(ctx context.Context, personGUID uuid.UUID) (*domain.Person, error) {
	person, err := rs.personRepo.GetByGUID(ctx, nil, personGUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.New(404, "person_not_found", fmt.Errorf("person %s not found", personGUID))
		}
		return nil, err
	}
	return person, nil
}

func (rs *registryService) SearchPersons(ctx context.Context, q repos.PersonSearch) ([]*domain.Person, error) {
	return rs.personRepo.Search(ctx, nil, q)
}

func (rs *registryService) CreateOrganization(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	if org.Name == "" {
		return nil, apierr.NewValidation(errors.New("name is required"))
	}
	return rs.orgRepo.Create(ctx, nil, org)
}

func (rs *registryService) ListOrganizations(ctx context.Context, limit int) ([]*domain.Organization, error) {
	return rs.orgRepo.List(ctx, nil, limit)
}
