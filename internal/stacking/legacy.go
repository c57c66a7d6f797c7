package stacking

import (
	"github.com/google/uuid"

	"github.com/aquabase/wellreg-backend/internal/domain"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

// SynthesizeLegacy builds a legacy snapshot submission from a well that was
// loaded before per-activity filing existed. The snapshot captures the
// well's current state so that stacking a new report on top of it starts
// from the full historical record instead of an empty baseline.
//
// The activity-specific construction dates travel back to the generic work
// date pair; stacking renames them forward again. String fields holding ""
// are dropped rather than copied, so the snapshot never pins a column to an
// empty value that a later report would then have to fight.
func SynthesizeLegacy(well *domain.Well, log *logger.Logger) *domain.ActivitySubmission {
	createUser := well.CreateUser
	if createUser == "" {
		createUser = domain.DataloadUser
		log.Warn("well has no creation provenance, recording snapshot under fallback identity",
			"well_tag_number", well.WellTagNumber,
			"user", domain.DataloadUser)
	}

	tag := well.WellTagNumber
	sub := &domain.ActivitySubmission{
		WellTagNumber:    &tag,
		WellActivityCode: domain.ActivityLegacy,

		WorkStartDate: copyPtr(well.ConstructionStartDate),
		WorkEndDate:   copyPtr(well.ConstructionEndDate),

		OwnerFullName:       cleanString(well.OwnerFullName),
		OwnerMailingAddress: cleanString(well.OwnerMailingAddress),
		OwnerCity:           cleanString(well.OwnerCity),
		OwnerProvinceState:  cleanString(well.OwnerProvinceState),
		OwnerPostalCode:     cleanString(well.OwnerPostalCode),

		StreetAddress:           cleanString(well.StreetAddress),
		City:                    cleanString(well.City),
		LegalLot:                cleanString(well.LegalLot),
		LegalPlan:               cleanString(well.LegalPlan),
		LegalDistrictLot:        cleanString(well.LegalDistrictLot),
		WellLocationDescription: cleanString(well.WellLocationDescription),

		IdentificationPlateNumber:       copyPtr(well.IdentificationPlateNumber),
		WellIdentificationPlateAttached: cleanString(well.WellIdentificationPlateAttached),

		WellClassCode:        cleanString(well.WellClassCode),
		IntendedWaterUseCode: cleanString(well.IntendedWaterUseCode),
		WellStatusCode:       cleanString(well.WellStatusCode),

		GroundElevation:           copyPtr(well.GroundElevation),
		GroundElevationMethodCode: cleanString(well.GroundElevationMethodCode),
		WellOrientation:           copyPtr(well.WellOrientation),

		SurfaceSealMaterialCode: cleanString(well.SurfaceSealMaterialCode),
		SurfaceSealLength:       copyPtr(well.SurfaceSealLength),
		SurfaceSealThickness:    copyPtr(well.SurfaceSealThickness),

		LinerMaterialCode: cleanString(well.LinerMaterialCode),
		LinerDiameter:     copyPtr(well.LinerDiameter),
		LinerThickness:    copyPtr(well.LinerThickness),

		TotalDepthDrilled: copyPtr(well.TotalDepthDrilled),
		FinishedWellDepth: copyPtr(well.FinishedWellDepth),
		StaticWaterLevel:  copyPtr(well.StaticWaterLevel),
		WellYield:         copyPtr(well.WellYield),
		ArtesianFlow:      copyPtr(well.ArtesianFlow),
		ArtesianPressure:  copyPtr(well.ArtesianPressure),

		WellCapType:     cleanString(well.WellCapType),
		WellDisinfected: copyPtr(well.WellDisinfected),

		Comments:                  cleanString(well.Comments),
		AlternativeSpecsSubmitted: copyPtr(well.AlternativeSpecsSubmitted),

		DecommissionReason:           cleanString(well.DecommissionReason),
		DecommissionMethodCode:       cleanString(well.DecommissionMethodCode),
		DecommissionSealantMaterial:  cleanString(well.DecommissionSealantMaterial),
		DecommissionBackfillMaterial: cleanString(well.DecommissionBackfillMaterial),

		DrillingMethods:    append([]domain.DrillingMethodCode(nil), well.DrillingMethods...),
		DevelopmentMethods: append([]domain.DevelopmentMethodCode(nil), well.DevelopmentMethods...),
	}

	for _, c := range well.Casings {
		c.CasingGUID = uuid.Nil
		c.WellTagNumber = nil
		c.FilingNumber = nil
		sub.Casings = append(sub.Casings, c)
	}
	for _, s := range well.Screens {
		s.ScreenGUID = uuid.Nil
		s.WellTagNumber = nil
		s.FilingNumber = nil
		sub.Screens = append(sub.Screens, s)
	}
	for _, p := range well.LinerPerforations {
		p.LinerPerforationGUID = uuid.Nil
		p.WellTagNumber = nil
		p.FilingNumber = nil
		sub.LinerPerforations = append(sub.LinerPerforations, p)
	}
	for _, l := range well.LithologyDescriptions {
		l.LithologyDescriptionGUID = uuid.Nil
		l.WellTagNumber = nil
		l.FilingNumber = nil
		sub.LithologyDescriptions = append(sub.LithologyDescriptions, l)
	}
	for _, d := range well.DecommissionDescriptions {
		d.DecommissionDescriptionGUID = uuid.Nil
		d.WellTagNumber = nil
		d.FilingNumber = nil
		sub.DecommissionDescriptions = append(sub.DecommissionDescriptions, d)
	}

	sub.CreateUser = createUser
	sub.CreateDate = well.CreateDate
	sub.UpdateUser = createUser
	sub.UpdateDate = well.CreateDate
	return sub
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cleanString(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	s := *p
	return &s
}
