package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/aquabase/wellreg-backend/internal/domain"
)

func SeedWell(tb testing.TB, ctx context.Context, tx *gorm.DB, owner string) *types.Well {
	tb.Helper()
	w := &types.Well{
		OwnerFullName: &owner,
	}
	w.CreateUser = "testloader"
	w.UpdateUser = "testloader"
	if err := tx.WithContext(ctx).Create(w).Error; err != nil {
		tb.Fatalf("seed well: %v", err)
	}
	return w
}

func SeedSubmission(tb testing.TB, ctx context.Context, tx *gorm.DB, activity types.ActivityCode, wellTag *int64) *types.ActivitySubmission {
	tb.Helper()
	s := &types.ActivitySubmission{
		WellTagNumber:    wellTag,
		WellActivityCode: activity,
	}
	s.CreateUser = "tester"
	s.UpdateUser = "tester"
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed submission: %v", err)
	}
	return s
}

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, surname string) *types.Person {
	tb.Helper()
	p := &types.Person{
		FirstName: "Pat",
		Surname:   surname,
	}
	p.CreateUser = "tester"
	p.UpdateUser = "tester"
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func PtrInt64(v int64) *int64 { return &v }

func PtrFloat(v float64) *float64 { return &v }

func PtrString(v string) *string { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
