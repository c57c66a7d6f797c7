package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/aquabase/wellreg-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Reference code tables
		// =========================
		&types.WellActivityCode{},
		&types.WellClassCode{},
		&types.WellStatusCode{},
		&types.IntendedWaterUseCode{},
		&types.DrillingMethodCode{},
		&types.DevelopmentMethodCode{},
		&types.GroundElevationMethodCode{},
		&types.SurfaceSealMaterialCode{},
		&types.LinerMaterialCode{},
		&types.CasingCode{},
		&types.CasingMaterialCode{},
		&types.ScreenAssemblyTypeCode{},
		&types.DecommissionMethodCode{},
		&types.DecommissionMaterialCode{},
		&types.ProvinceStateCode{},

		// =========================
		// Submissions + wells
		// =========================
		&types.ActivitySubmission{},
		&types.Well{},

		// Depth-ranged children (shared by both parents)
		&types.Casing{},
		&types.Screen{},
		&types.LinerPerforation{},
		&types.LithologyDescription{},
		&types.DecommissionDescription{},

		// =========================
		// Driller / installer registry
		// =========================
		&types.Organization{},
		&types.Person{},
	)
}

func EnsureWellIndexes(db *gorm.DB) error {
	// uuid-ossp is already enabled in NewPostgresService, but safe to re-run
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("enable uuid-ossp: %w", err)
	}
	// Stacking reads a well's submissions ordered by creation time.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_activity_submission_well_created
		ON activity_submission (well_tag_number, create_date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_activity_submission_well_created: %w", err)
	}
	// Child sets are loaded per parent from either side.
	for _, table := range []string{"casing", "screen", "liner_perforation", "lithology_description", "decommission_description"} {
		if err := db.Exec(fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS idx_%s_filing ON %s (filing_number);
		`, table, table)).Error; err != nil {
			return fmt.Errorf("create idx_%s_filing: %w", table, err)
		}
		if err := db.Exec(fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS idx_%s_well ON %s (well_tag_number);
		`, table, table)).Error; err != nil {
			return fmt.Errorf("create idx_%s_well: %w", table, err)
		}
	}
	// Registry searches are surname-first.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_registries_person_surname
		ON registries_person (surname, first_name);
	`).Error; err != nil {
		return fmt.Errorf("create idx_registries_person_surname: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureWellIndexes(s.db); err != nil {
		s.log.Error("Well index migration failed", "error", err)
		return err
	}
	return nil
}
