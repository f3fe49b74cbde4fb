package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"health-records-service/internal/authz"
	"health-records-service/internal/domain/entity"
	"health-records-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	users    *mockUserRepository
	patients *mockPatientProfileRepository
	doctors  *mockDoctorProfileRepository
	records  *mockMedicalRecordRepository
	usecase  DashboardUsecase
}

func newDashboardFixture(user *entity.User) *dashboardFixture {
	f := &dashboardFixture{
		users: &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				if user != nil && id == user.ID {
					return user, nil
				}
				return nil, nil
			},
		},
		patients: &mockPatientProfileRepository{},
		doctors:  &mockDoctorProfileRepository{},
		records:  &mockMedicalRecordRepository{},
	}
	f.usecase = NewDashboardUsecase(quietLogger(), f.users, f.patients, f.doctors, f.records)
	return f
}

func callerFor(user *entity.User) *authz.Caller {
	return &authz.Caller{ID: user.ID, HealthID: user.HealthID, Role: user.Role, TokenID: "t"}
}

func TestPatientDashboard(t *testing.T) {
	user := &entity.User{ID: uuid.New(), HealthID: "PAT_1", Name: "Asha", Role: entity.RolePatient}
	f := newDashboardFixture(user)
	visit := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	f.patients.FindByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
		return &entity.PatientProfile{UserID: userID, BloodGroup: "O+", LastVisitAt: &visit}, nil
	}
	f.records.CountByPatientIDFunc = func(ctx context.Context, patientID uuid.UUID) (int64, error) {
		assert.Equal(t, user.ID, patientID)
		return 7, nil
	}
	f.records.FindByPatientIDFunc = func(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
		assert.Equal(t, user.ID, patientID)
		assert.Equal(t, 5, limit)
		records := make([]entity.MedicalRecord, limit)
		for i := range records {
			records[i] = recordOn(fmt.Sprintf("2024-01-%02d", 20-i))
		}
		return records, nil
	}

	resp, err := f.usecase.GetDashboard(context.Background(), callerFor(user))
	require.NoError(t, err)
	assert.Equal(t, "patient", resp.Role)
	assert.Equal(t, "PAT_1", resp.User.UserID)
	require.NotNil(t, resp.Patient)
	assert.Nil(t, resp.Doctor)
	assert.Equal(t, int64(7), resp.Patient.TotalRecords)
	assert.Len(t, resp.Patient.RecentRecords, 5)
	assert.Equal(t, "2024-01-20", resp.Patient.RecentRecords[0].DateOfVisit)
	assert.Equal(t, "O+", resp.Patient.Profile.BloodGroup)
	assert.Equal(t, "2024-02-01", resp.Patient.Profile.LastVisit)
}

func TestDoctorDashboard(t *testing.T) {
	user := &entity.User{ID: uuid.New(), HealthID: "DOC_1", Name: "Dr. Rao", Role: entity.RoleDoctor}
	f := newDashboardFixture(user)
	f.doctors.FindByUserIDFunc = func(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
		return &entity.DoctorProfile{Specialization: "Cardiology"}, nil
	}
	f.records.CountByDoctorIDFunc = func(ctx context.Context, doctorID uuid.UUID) (int64, error) {
		return 12, nil
	}
	f.records.FindByDoctorIDFunc = func(ctx context.Context, doctorID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
		assert.Equal(t, 5, limit)
		return []entity.MedicalRecord{recordOn("2024-03-01")}, nil
	}

	resp, err := f.usecase.GetDashboard(context.Background(), callerFor(user))
	require.NoError(t, err)
	require.NotNil(t, resp.Doctor)
	assert.Equal(t, int64(12), resp.Doctor.TotalRecords)
	assert.Equal(t, "Cardiology", resp.Doctor.Profile.Specialization)
	assert.Len(t, resp.Doctor.RecentRecords, 1)
}

func TestLabAndAnimalOwnerDashboards(t *testing.T) {
	lab := &entity.User{ID: uuid.New(), HealthID: "LAB_1", Role: entity.RoleLab, LabProfile: &entity.LabProfile{LabName: "City Lab"}}
	resp, err := newDashboardFixture(lab).usecase.GetDashboard(context.Background(), callerFor(lab))
	require.NoError(t, err)
	require.NotNil(t, resp.Lab)
	assert.Equal(t, "City Lab", resp.Lab.Profile.LabName)

	owner := &entity.User{ID: uuid.New(), HealthID: "ANM_1", Role: entity.RoleAnimalOwner, AnimalOwnerProfile: &entity.AnimalOwnerProfile{PetsCount: 2, AnimalTypes: []string{"dog", "cat"}}}
	resp, err = newDashboardFixture(owner).usecase.GetDashboard(context.Background(), callerFor(owner))
	require.NoError(t, err)
	require.NotNil(t, resp.AnimalOwner)
	assert.Equal(t, 2, resp.AnimalOwner.PetsCount)
	assert.Equal(t, []string{"dog", "cat"}, resp.AnimalOwner.AnimalTypes)
}

func TestAdminDashboardCountsEveryRole(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), HealthID: "ADM_1", Role: entity.RoleAdmin}
	f := newDashboardFixture(admin)
	f.users.CountByRoleFunc = func(ctx context.Context) (map[entity.Role]int64, error) {
		return map[entity.Role]int64{entity.RolePatient: 10, entity.RoleDoctor: 3, entity.RoleAdmin: 1}, nil
	}

	resp, err := f.usecase.GetDashboard(context.Background(), callerFor(admin))
	require.NoError(t, err)
	require.NotNil(t, resp.Admin)
	assert.Equal(t, int64(14), resp.Admin.TotalUsers)
	assert.Equal(t, int64(0), resp.Admin.UsersByRole["lab"])
	assert.Len(t, resp.Admin.UsersByRole, len(entity.Roles))
}

func TestDashboardErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newDashboardFixture(nil).usecase.GetDashboard(ctx, nil)
	assert.True(t, errors.Is(err, authz.ErrUnauthenticated))

	ghost := &authz.Caller{ID: uuid.New(), Role: entity.RoleLab}
	_, err = newDashboardFixture(nil).usecase.GetDashboard(ctx, ghost)
	assert.True(t, errors.Is(err, ErrUserNotFound))

	_, err = newDashboardFixture(nil).usecase.GetDashboard(ctx, &authz.Caller{ID: uuid.New(), Role: entity.Role("nurse")})
	assert.True(t, errors.Is(err, ErrUnknownRole))

	inactive := false
	disabled := &entity.User{ID: uuid.New(), Role: entity.RoleLab, IsActive: &inactive}
	_, err = newDashboardFixture(disabled).usecase.GetDashboard(ctx, callerFor(disabled))
	assert.True(t, errors.Is(err, ErrAccountDisabled))

	user := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	f := newDashboardFixture(user)
	f.records.FindByPatientIDFunc = func(ctx context.Context, patientID uuid.UUID, limit int) ([]entity.MedicalRecord, error) {
		return nil, context.DeadlineExceeded
	}
	_, err = f.usecase.GetDashboard(ctx, callerFor(user))
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
}
