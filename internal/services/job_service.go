package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(db *gorm.DB, vendorUserID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	// TransitionJob переводит смену по таблице переходов. Принять/отклонить
	// может только официант, запуск и завершение — сторона вендора.
	TransitionJob(db *gorm.DB, jobID, actorID string, req *dto.TransitionJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID, actorID string) (*dto.JobResponse, error)
	GetWaiterJobs(db *gorm.DB, waiterUserID string, page, pageSize int) (*dto.JobListResponse, error)
	GetVendorJobs(db *gorm.DB, vendorUserID string, page, pageSize int) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	orderRepo    repositories.OrderRepository
	profileRepo  repositories.ProfileRepository
	userRepo     repositories.UserRepository
	notification NotificationService
	transact     txRunner
}

func NewJobService(
	jobRepo repositories.JobRepository,
	orderRepo repositories.OrderRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notification NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		orderRepo:    orderRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		notification: notification,
		transact:     gormTransact,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, vendorUserID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	vendor, err := s.profileRepo.FindVendorByUserID(db, vendorUserID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved {
		return nil, apperrors.ErrProfileNotApproved
	}

	waiter, err := s.profileRepo.FindWaiterByID(db, req.WaiterProfileID)
	if err != nil {
		return nil, err
	}
	if !waiter.IsApproved || !waiter.IsAvailable {
		return nil, apperrors.ErrWaiterNotAvailable
	}

	// Привязка к заказу необязательна, но если есть — заказ должен
	// принадлежать этому же вендору
	if req.OrderID != nil {
		order, err := s.orderRepo.FindOrderByID(db, *req.OrderID)
		if err != nil {
			return nil, err
		}
		if order.VendorProfileID != vendor.ID {
			return nil, apperrors.ErrNotPartyToTransaction
		}
	}

	hours, err := models.HoursBetween(req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	job := &models.Job{
		VendorProfileID: vendor.ID,
		WaiterProfileID: req.WaiterProfileID,
		OrderID:         req.OrderID,
		Position:        req.Position,
		EventDate:       req.EventDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		HourlyRate:      req.HourlyRate,
		TotalHours:      hours,
		TotalAmount:     hours * req.HourlyRate,
		Address:         req.Address,
		Notes:           req.Notes,
		Status:          models.JobStatusPending,
	}

	err = s.transact(db, func(tx *gorm.DB) error {
		if err := s.jobRepo.CreateJob(tx, job); err != nil {
			return err
		}
		return s.profileRepo.IncrementWaiterTotalJobs(tx, job.WaiterProfileID)
	})
	if err != nil {
		return nil, err
	}

	go s.notification.NotifyJobOffer(db, job)

	return toJobResponse(job), nil
}

func (s *JobServiceImpl) TransitionJob(db *gorm.DB, jobID, actorID string, req *dto.TransitionJobRequest) (*dto.JobResponse, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown job status %q", req.Status))
	}

	actor, err := s.userRepo.FindByID(db, actorID)
	if err != nil {
		return nil, err
	}

	var updated *models.Job
	err = s.transact(db, func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindJobByIDForUpdate(tx, jobID)
		if err != nil {
			return err
		}

		if err := s.authorizeJobTransition(tx, job, actor, req.Status); err != nil {
			return err
		}

		if !job.Status.CanTransitionTo(req.Status) {
			return apperrors.ErrInvalidTransition("job",
				fmt.Sprintf("переход %s -> %s недопустим", job.Status, req.Status))
		}

		now := time.Now()
		job.Status = req.Status
		switch req.Status {
		case models.JobStatusAccepted:
			job.RespondedAt = &now
		case models.JobStatusDeclined:
			job.RespondedAt = &now
			job.DeclineReason = req.DeclineReason
		case models.JobStatusCompleted:
			job.CompletedAt = &now
		}

		if err := s.jobRepo.UpdateJob(tx, job); err != nil {
			return err
		}

		if req.Status == models.JobStatusCompleted {
			if err := s.profileRepo.IncrementWaiterCompletedJobs(tx, job.WaiterProfileID); err != nil {
				return err
			}
		}

		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toJobResponse(updated), nil
}

func (s *JobServiceImpl) authorizeJobTransition(db *gorm.DB, job *models.Job, actor *models.User, target models.JobStatus) error {
	if actor.Role == models.UserRoleAdmin {
		return nil
	}

	isWaiter := false
	if actor.Role == models.UserRoleWaiter {
		waiter, err := s.profileRepo.FindWaiterByUserID(db, actor.ID)
		if err == nil && waiter.ID == job.WaiterProfileID {
			isWaiter = true
		}
	}
	isVendor := false
	if actor.Role == models.UserRoleVendor {
		vendor, err := s.profileRepo.FindVendorByUserID(db, actor.ID)
		if err == nil && vendor.ID == job.VendorProfileID {
			isVendor = true
		}
	}

	if !isWaiter && !isVendor {
		return apperrors.ErrNotPartyToTransaction
	}

	switch target {
	case models.JobStatusAccepted, models.JobStatusDeclined:
		if !isWaiter {
			return apperrors.ErrInsufficientPermissions
		}
	case models.JobStatusInProgress, models.JobStatusCompleted:
		if !isVendor {
			return apperrors.ErrInsufficientPermissions
		}
	case models.JobStatusCancelled:
		// обе стороны
	default:
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID, actorID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, err
	}
	actor, err := s.userRepo.FindByID(db, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.UserRoleAdmin {
		if err := s.authorizeJobParty(db, job, actor); err != nil {
			return nil, err
		}
	}
	return toJobResponse(job), nil
}

func (s *JobServiceImpl) authorizeJobParty(db *gorm.DB, job *models.Job, actor *models.User) error {
	if actor.Role == models.UserRoleWaiter {
		waiter, err := s.profileRepo.FindWaiterByUserID(db, actor.ID)
		if err == nil && waiter.ID == job.WaiterProfileID {
			return nil
		}
	}
	if actor.Role == models.UserRoleVendor {
		vendor, err := s.profileRepo.FindVendorByUserID(db, actor.ID)
		if err == nil && vendor.ID == job.VendorProfileID {
			return nil
		}
	}
	return apperrors.ErrNotPartyToTransaction
}

func (s *JobServiceImpl) GetWaiterJobs(db *gorm.DB, waiterUserID string, page, pageSize int) (*dto.JobListResponse, error) {
	waiter, err := s.profileRepo.FindWaiterByUserID(db, waiterUserID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePagination(page, pageSize)
	jobs, total, err := s.jobRepo.FindJobsByWaiter(db, waiter.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toJobListResponse(jobs, total, page, pageSize), nil
}

func (s *JobServiceImpl) GetVendorJobs(db *gorm.DB, vendorUserID string, page, pageSize int) (*dto.JobListResponse, error) {
	vendor, err := s.profileRepo.FindVendorByUserID(db, vendorUserID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePagination(page, pageSize)
	jobs, total, err := s.jobRepo.FindJobsByVendor(db, vendor.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toJobListResponse(jobs, total, page, pageSize), nil
}

func toJobResponse(j *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:              j.ID,
		VendorProfileID: j.VendorProfileID,
		WaiterProfileID: j.WaiterProfileID,
		OrderID:         j.OrderID,
		Position:        j.Position,
		EventDate:       j.EventDate,
		StartTime:       j.StartTime,
		EndTime:         j.EndTime,
		HourlyRate:      j.HourlyRate,
		TotalHours:      j.TotalHours,
		TotalAmount:     j.TotalAmount,
		Address:         j.Address,
		Notes:           j.Notes,
		Status:          j.Status,
		DeclineReason:   j.DeclineReason,
		RespondedAt:     j.RespondedAt,
		CompletedAt:     j.CompletedAt,
		IsRated:         j.IsRated,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func toJobListResponse(jobs []models.Job, total int64, page, pageSize int) *dto.JobListResponse {
	resp := &dto.JobListResponse{
		Jobs:       make([]*dto.JobResponse, 0, len(jobs)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(&jobs[i]))
	}
	return resp
}
