package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servora_backend/internal/models"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type jobFixture struct {
	svc  *JobServiceImpl
	jobs *fakeJobRepo

	vendor *models.User
	waiter *models.User

	vendorProfile *models.VendorProfile
	waiterProfile *models.WaiterProfile
}

func newJobFixture() *jobFixture {
	vendor := &models.User{Role: models.UserRoleVendor}
	vendor.ID = "user-vendor"
	waiter := &models.User{Role: models.UserRoleWaiter}
	waiter.ID = "user-waiter"

	vendorProfile := &models.VendorProfile{UserID: vendor.ID, IsApproved: true, IsAvailable: true}
	vendorProfile.ID = "vp-1"
	waiterProfile := &models.WaiterProfile{UserID: waiter.ID, IsApproved: true, IsAvailable: true}
	waiterProfile.ID = "wp-1"

	jobs := &fakeJobRepo{jobs: map[string]*models.Job{}}
	profiles := &fakeProfileRepo{
		vendors: map[string]*models.VendorProfile{vendorProfile.ID: vendorProfile},
		waiters: map[string]*models.WaiterProfile{waiterProfile.ID: waiterProfile},
	}
	users := &fakeUserRepo{users: map[string]*models.User{
		vendor.ID: vendor,
		waiter.ID: waiter,
	}}

	svc := &JobServiceImpl{
		jobRepo:      jobs,
		orderRepo:    &fakeOrderRepo{orders: map[string]*models.Order{}},
		profileRepo:  profiles,
		userRepo:     users,
		notification: fakeNotifier{},
		transact:     passTx,
	}
	return &jobFixture{
		svc:           svc,
		jobs:          jobs,
		vendor:        vendor,
		waiter:        waiter,
		vendorProfile: vendorProfile,
		waiterProfile: waiterProfile,
	}
}

func (f *jobFixture) seedJob(status models.JobStatus) *models.Job {
	job := &models.Job{
		VendorProfileID: f.vendorProfile.ID,
		WaiterProfileID: f.waiterProfile.ID,
		Status:          status,
	}
	job.ID = "job-1"
	f.jobs.jobs[job.ID] = job
	return job
}

func TestCreateJobComputesTotals(t *testing.T) {
	f := newJobFixture()

	resp, err := f.svc.CreateJob(nil, f.vendor.ID, &dto.CreateJobRequest{
		WaiterProfileID: f.waiterProfile.ID,
		Position:        "Waiter",
		StartTime:       "17:30",
		EndTime:         "23:00",
		HourlyRate:      2000,
		Address:         "Main St 1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, resp.Status)
	assert.Equal(t, 5.5, resp.TotalHours)
	assert.Equal(t, 11000.0, resp.TotalAmount)
	assert.Equal(t, int64(1), f.waiterProfile.TotalJobs)
}

func TestCreateJobRejectsUnavailableWaiter(t *testing.T) {
	f := newJobFixture()
	f.waiterProfile.IsAvailable = false

	_, err := f.svc.CreateJob(nil, f.vendor.ID, &dto.CreateJobRequest{
		WaiterProfileID: f.waiterProfile.ID,
		Position:        "Waiter",
		StartTime:       "18:00",
		EndTime:         "23:00",
		HourlyRate:      2000,
		Address:         "Main St 1",
	})
	assert.ErrorIs(t, err, apperrors.ErrWaiterNotAvailable)
}

func TestTransitionJobAcceptStampsResponse(t *testing.T) {
	f := newJobFixture()
	job := f.seedJob(models.JobStatusPending)

	// Принимает только официант
	_, err := f.svc.TransitionJob(nil, job.ID, f.vendor.ID, &dto.TransitionJobRequest{Status: models.JobStatusAccepted})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	resp, err := f.svc.TransitionJob(nil, job.ID, f.waiter.ID, &dto.TransitionJobRequest{Status: models.JobStatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusAccepted, resp.Status)
	assert.NotNil(t, resp.RespondedAt)
}

func TestTransitionJobDeclineKeepsReason(t *testing.T) {
	f := newJobFixture()
	job := f.seedJob(models.JobStatusPending)

	reason := "Not available that day"
	resp, err := f.svc.TransitionJob(nil, job.ID, f.waiter.ID, &dto.TransitionJobRequest{
		Status:        models.JobStatusDeclined,
		DeclineReason: &reason,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.DeclineReason)
	assert.Equal(t, reason, *resp.DeclineReason)
	assert.NotNil(t, resp.RespondedAt)

	// declined терминален
	_, err = f.svc.TransitionJob(nil, job.ID, f.waiter.ID, &dto.TransitionJobRequest{Status: models.JobStatusAccepted})
	assert.Error(t, err)
}

func TestTransitionJobCompleteIsVendorSide(t *testing.T) {
	f := newJobFixture()
	job := f.seedJob(models.JobStatusInProgress)

	_, err := f.svc.TransitionJob(nil, job.ID, f.waiter.ID, &dto.TransitionJobRequest{Status: models.JobStatusCompleted})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	resp, err := f.svc.TransitionJob(nil, job.ID, f.vendor.ID, &dto.TransitionJobRequest{Status: models.JobStatusCompleted})
	require.NoError(t, err)
	assert.NotNil(t, resp.CompletedAt)
	assert.Equal(t, int64(1), f.waiterProfile.CompletedJobs)
}

func TestTransitionJobRunningShiftCannotBeCancelled(t *testing.T) {
	f := newJobFixture()
	job := f.seedJob(models.JobStatusInProgress)

	_, err := f.svc.TransitionJob(nil, job.ID, f.vendor.ID, &dto.TransitionJobRequest{Status: models.JobStatusCancelled})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}
