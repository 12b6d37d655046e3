package services

import (
	"errors"

	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
	"servora_backend/pkg/apperrors"
)

type RatingService interface {
	// SubmitRating создает отзыв по завершенной сделке и атомарно
	// пересчитывает агрегаты цели. Дубликат по активной паре
	// (reviewer, сделка) отклоняется — гонку закрывает частичный
	// уникальный индекс в БД.
	SubmitRating(db *gorm.DB, reviewerID string, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error)
	// RetractRating - мягкое удаление: отзыв исчезает из агрегатов,
	// но строка остается. После отзыва можно оставить новый.
	RetractRating(db *gorm.DB, ratingID, actorID string) error
	// RespondToRating - одноразовый публичный ответ оцененной стороны.
	RespondToRating(db *gorm.DB, ratingID, responderID string, req *dto.RespondToRatingRequest) (*dto.RatingResponse, error)
	// ReportRating помечает отзыв как нарушающий. Повторная жалоба - конфликт.
	ReportRating(db *gorm.DB, ratingID, reporterID string, req *dto.ReportRatingRequest) error
	// RecomputeAggregate пересчитывает витринные агрегаты профиля из
	// активных отзывов. Идемпотентна, пригодна для бэкфилла.
	RecomputeAggregate(db *gorm.DB, targetType models.RatingTargetType, profileID string) error

	GetRating(db *gorm.DB, ratingID string) (*dto.RatingResponse, error)
	GetVendorRatings(db *gorm.DB, vendorProfileID string, page, pageSize int) (*dto.RatingListResponse, error)
	GetWaiterRatings(db *gorm.DB, waiterProfileID string, page, pageSize int) (*dto.RatingListResponse, error)
	GetReportedRatings(db *gorm.DB, page, pageSize int) (*dto.RatingListResponse, error)
}

type RatingServiceImpl struct {
	ratingRepo  repositories.RatingRepository
	orderRepo   repositories.OrderRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	transact    txRunner
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	orderRepo repositories.OrderRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) RatingService {
	return &RatingServiceImpl{
		ratingRepo:  ratingRepo,
		orderRepo:   orderRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		transact:    gormTransact,
	}
}

func (s *RatingServiceImpl) SubmitRating(db *gorm.DB, reviewerID string, req *dto.SubmitRatingRequest) (*dto.RatingResponse, error) {
	if !req.TargetType.IsValid() {
		return nil, apperrors.ErrRatingTargetMismatch
	}

	rating := &models.Rating{
		ReviewerID:      reviewerID,
		TargetType:      req.TargetType,
		Score:           req.Score,
		ReviewText:      req.ReviewText,
		Punctuality:     req.Punctuality,
		Professionalism: req.Professionalism,
		Quality:         req.Quality,
		IsActive:        true,
	}

	switch req.TargetType {
	case models.RatingTargetVendor:
		if req.JobID != nil || req.OrderID == nil {
			return nil, apperrors.ErrRatingTargetMismatch
		}
		if req.AttitudeScore != nil {
			// attitude оценивается только у официантов
			return nil, apperrors.ErrRatingTargetMismatch
		}
		order, err := s.orderRepo.FindOrderByID(db, *req.OrderID)
		if err != nil {
			return nil, err
		}
		if order.UserID != reviewerID {
			return nil, apperrors.ErrNotPartyToTransaction
		}
		if order.Status != models.OrderStatusCompleted {
			return nil, apperrors.ErrRatingNotEligible
		}
		// Явная цель, если задана, обязана совпасть со стороной сделки
		if req.TargetProfileID != nil && *req.TargetProfileID != order.VendorProfileID {
			return nil, apperrors.ErrRatingTargetMismatch
		}
		rating.VendorProfileID = &order.VendorProfileID
		rating.OrderID = req.OrderID

	case models.RatingTargetWaiter:
		if req.OrderID != nil || req.JobID == nil {
			return nil, apperrors.ErrRatingTargetMismatch
		}
		job, err := s.jobRepo.FindJobByID(db, *req.JobID)
		if err != nil {
			return nil, err
		}
		vendor, err := s.profileRepo.FindVendorByUserID(db, reviewerID)
		if err != nil || vendor.ID != job.VendorProfileID {
			return nil, apperrors.ErrNotPartyToTransaction
		}
		if job.Status != models.JobStatusCompleted {
			return nil, apperrors.ErrRatingNotEligible
		}
		if req.TargetProfileID != nil && *req.TargetProfileID != job.WaiterProfileID {
			return nil, apperrors.ErrRatingTargetMismatch
		}
		rating.WaiterProfileID = &job.WaiterProfileID
		rating.JobID = req.JobID
		rating.AttitudeScore = req.AttitudeScore
	}

	if err := rating.ValidateShape(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	// Дружелюбная проверка дубликата до транзакции; гонку двух
	// конкурентных сабмитов все равно ловит индекс внутри CreateRating.
	if err := s.checkDuplicate(db, rating); err != nil {
		return nil, err
	}

	err := s.transact(db, func(tx *gorm.DB) error {
		if err := s.ratingRepo.CreateRating(tx, rating); err != nil {
			if errors.Is(err, repositories.ErrDuplicateRating) {
				return apperrors.ErrDuplicateRating
			}
			return err
		}
		if rating.OrderID != nil {
			if err := s.orderRepo.MarkRated(tx, *rating.OrderID); err != nil {
				return err
			}
		}
		if rating.JobID != nil {
			if err := s.jobRepo.MarkRated(tx, *rating.JobID); err != nil {
				return err
			}
		}
		return s.recompute(tx, rating.TargetType, rating.TargetProfileID())
	})
	if err != nil {
		return nil, err
	}

	return toRatingResponse(rating), nil
}

func (s *RatingServiceImpl) checkDuplicate(db *gorm.DB, rating *models.Rating) error {
	var (
		exists bool
		err    error
	)
	if rating.OrderID != nil {
		exists, err = s.ratingRepo.HasActiveRatingForOrder(db, rating.ReviewerID, *rating.OrderID)
	} else {
		exists, err = s.ratingRepo.HasActiveRatingForJob(db, rating.ReviewerID, *rating.JobID)
	}
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrDuplicateRating
	}
	return nil
}

func (s *RatingServiceImpl) RetractRating(db *gorm.DB, ratingID, actorID string) error {
	actor, err := s.userRepo.FindByID(db, actorID)
	if err != nil {
		return err
	}

	return s.transact(db, func(tx *gorm.DB) error {
		rating, err := s.ratingRepo.FindRatingByID(tx, ratingID)
		if err != nil {
			return err
		}
		if actor.ID != rating.ReviewerID && actor.Role != models.UserRoleAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		if !rating.IsActive {
			// уже отозван, повторный вызов безвреден
			return nil
		}
		rating.IsActive = false
		if err := s.ratingRepo.UpdateRating(tx, rating); err != nil {
			return err
		}
		return s.recompute(tx, rating.TargetType, rating.TargetProfileID())
	})
}

func (s *RatingServiceImpl) RespondToRating(db *gorm.DB, ratingID, responderID string, req *dto.RespondToRatingRequest) (*dto.RatingResponse, error) {
	var updated *models.Rating
	// Write-once проверка и запись ответа - одна атомарная единица:
	// без блокировки два конкурентных ответа прошли бы guard одновременно
	err := s.transact(db, func(tx *gorm.DB) error {
		rating, err := s.ratingRepo.FindRatingByIDForUpdate(tx, ratingID)
		if err != nil {
			return err
		}

		// Отвечать может только оцененная сторона
		targetUserID, err := s.ratedPartyUserID(tx, rating)
		if err != nil {
			return err
		}
		if targetUserID != responderID {
			return apperrors.ErrInsufficientPermissions
		}

		if rating.Response != nil {
			return apperrors.ErrRatingAlreadyResponded
		}

		rating.SetResponse(req.Response)
		if err := s.ratingRepo.UpdateRating(tx, rating); err != nil {
			return err
		}
		updated = rating
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toRatingResponse(updated), nil
}

func (s *RatingServiceImpl) ratedPartyUserID(db *gorm.DB, rating *models.Rating) (string, error) {
	switch rating.TargetType {
	case models.RatingTargetVendor:
		vendor, err := s.profileRepo.FindVendorByID(db, *rating.VendorProfileID)
		if err != nil {
			return "", err
		}
		return vendor.UserID, nil
	case models.RatingTargetWaiter:
		waiter, err := s.profileRepo.FindWaiterByID(db, *rating.WaiterProfileID)
		if err != nil {
			return "", err
		}
		return waiter.UserID, nil
	}
	return "", apperrors.ErrRatingTargetMismatch
}

func (s *RatingServiceImpl) ReportRating(db *gorm.DB, ratingID, reporterID string, req *dto.ReportRatingRequest) error {
	return s.transact(db, func(tx *gorm.DB) error {
		rating, err := s.ratingRepo.FindRatingByIDForUpdate(tx, ratingID)
		if err != nil {
			return err
		}
		if rating.IsReported {
			return apperrors.ErrRatingAlreadyReported
		}
		rating.IsReported = true
		rating.ReportReason = &req.Reason
		return s.ratingRepo.UpdateRating(tx, rating)
	})
}

func (s *RatingServiceImpl) RecomputeAggregate(db *gorm.DB, targetType models.RatingTargetType, profileID string) error {
	if !targetType.IsValid() {
		return apperrors.ErrRatingTargetMismatch
	}
	return s.recompute(db, targetType, profileID)
}

// recompute пересчитывает средние из SUM/COUNT активных отзывов.
// Округление вверх до десятых, целочисленно. Ноль отзывов — нулевые агрегаты.
func (s *RatingServiceImpl) recompute(db *gorm.DB, targetType models.RatingTargetType, profileID string) error {
	switch targetType {
	case models.RatingTargetVendor:
		agg, err := s.ratingRepo.AggregateVendor(db, profileID)
		if err != nil {
			return err
		}
		avg := ceilToTenth(agg.ScoreSum, agg.Count)
		return s.profileRepo.WriteVendorAggregates(db, profileID, avg, agg.Count)
	case models.RatingTargetWaiter:
		agg, err := s.ratingRepo.AggregateWaiter(db, profileID)
		if err != nil {
			return err
		}
		avg := ceilToTenth(agg.ScoreSum, agg.Count)
		attitude := ceilToTenth(agg.AttitudeSum, agg.AttitudeCount)
		return s.profileRepo.WriteWaiterAggregates(db, profileID, avg, attitude, agg.Count)
	}
	return apperrors.ErrRatingTargetMismatch
}

func (s *RatingServiceImpl) GetRating(db *gorm.DB, ratingID string) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.FindRatingByID(db, ratingID)
	if err != nil {
		return nil, err
	}
	return toRatingResponse(rating), nil
}

func (s *RatingServiceImpl) GetVendorRatings(db *gorm.DB, vendorProfileID string, page, pageSize int) (*dto.RatingListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	ratings, total, err := s.ratingRepo.FindActiveByVendor(db, vendorProfileID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toRatingListResponse(ratings, total, page, pageSize), nil
}

func (s *RatingServiceImpl) GetWaiterRatings(db *gorm.DB, waiterProfileID string, page, pageSize int) (*dto.RatingListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	ratings, total, err := s.ratingRepo.FindActiveByWaiter(db, waiterProfileID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toRatingListResponse(ratings, total, page, pageSize), nil
}

func (s *RatingServiceImpl) GetReportedRatings(db *gorm.DB, page, pageSize int) (*dto.RatingListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	ratings, total, err := s.ratingRepo.FindReported(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return toRatingListResponse(ratings, total, page, pageSize), nil
}

func toRatingResponse(r *models.Rating) *dto.RatingResponse {
	return &dto.RatingResponse{
		ID:              r.ID,
		ReviewerID:      r.ReviewerID,
		TargetType:      r.TargetType,
		VendorProfileID: r.VendorProfileID,
		WaiterProfileID: r.WaiterProfileID,
		OrderID:         r.OrderID,
		JobID:           r.JobID,
		Score:           r.Score,
		AttitudeScore:   r.AttitudeScore,
		ReviewText:      r.ReviewText,
		Punctuality:     r.Punctuality,
		Professionalism: r.Professionalism,
		Quality:         r.Quality,
		IsActive:        r.IsActive,
		IsReported:      r.IsReported,
		Response:        r.Response,
		RespondedAt:     r.RespondedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func toRatingListResponse(ratings []models.Rating, total int64, page, pageSize int) *dto.RatingListResponse {
	resp := &dto.RatingListResponse{
		Ratings:    make([]*dto.RatingResponse, 0, len(ratings)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(total, pageSize),
	}
	for i := range ratings {
		resp.Ratings = append(resp.Ratings, toRatingResponse(&ratings[i]))
	}
	return resp
}
