package models

import (
	"errors"
	"time"
)

type RatingTargetType string

const (
	RatingTargetVendor RatingTargetType = "vendor"
	RatingTargetWaiter RatingTargetType = "waiter"
)

var (
	ErrRatingTargetAmbiguous = errors.New("rating must reference exactly one of vendor or waiter profile")
	ErrRatingTxnMismatch     = errors.New("rating transaction reference must match target type")
	ErrRatingScoreRange      = errors.New("rating score must be between 1 and 5")
)

// Rating - отзыв по завершенной сделке. Цель полиморфна: либо профиль
// исполнителя (по Order), либо профиль официанта (по Job), и ссылка на
// сделку обязана соответствовать типу цели. Удаление только мягкое.
//
// Частичные уникальные индексы закрывают гонку двойной отправки на
// уровне хранилища: максимум один активный отзыв на тройку
// (reviewer, target, transaction).
type Rating struct {
	BaseModel
	ReviewerID string           `gorm:"not null;index;uniqueIndex:ux_rating_active_order,where:is_active;uniqueIndex:ux_rating_active_job,where:is_active"`
	TargetType RatingTargetType `gorm:"type:varchar(10);not null"`

	VendorProfileID *string `gorm:"index;uniqueIndex:ux_rating_active_order,where:is_active"`
	WaiterProfileID *string `gorm:"index;uniqueIndex:ux_rating_active_job,where:is_active"`
	OrderID         *string `gorm:"uniqueIndex:ux_rating_active_order,where:is_active"`
	JobID           *string `gorm:"uniqueIndex:ux_rating_active_job,where:is_active"`

	Score         int  `gorm:"not null;check:score >= 1 AND score <= 5"`
	AttitudeScore *int `gorm:"check:attitude_score IS NULL OR (attitude_score >= 1 AND attitude_score <= 5)"` // только для официантов
	ReviewText    string

	// Детализация (опционально)
	Punctuality     *int
	Professionalism *int
	Quality         *int

	IsActive     bool `gorm:"default:true;index"`
	IsReported   bool `gorm:"default:false"`
	ReportReason *string

	// Ответ оцененной стороны, пишется один раз
	Response    *string
	RespondedAt *time.Time

	// Relations
	Reviewer User           `gorm:"foreignKey:ReviewerID"`
	Vendor   *VendorProfile `gorm:"foreignKey:VendorProfileID"`
	Waiter   *WaiterProfile `gorm:"foreignKey:WaiterProfileID"`
	Order    *Order         `gorm:"foreignKey:OrderID"`
	Job      *Job           `gorm:"foreignKey:JobID"`
}

func (t RatingTargetType) IsValid() bool {
	return t == RatingTargetVendor || t == RatingTargetWaiter
}

// TargetProfileID возвращает id оцененного профиля
func (r *Rating) TargetProfileID() string {
	switch r.TargetType {
	case RatingTargetVendor:
		if r.VendorProfileID != nil {
			return *r.VendorProfileID
		}
	case RatingTargetWaiter:
		if r.WaiterProfileID != nil {
			return *r.WaiterProfileID
		}
	}
	return ""
}

// ValidateShape проверяет структурный инвариант отзыва: ровно одна цель,
// ссылка на сделку соответствует типу цели, оценки в диапазоне.
// Никогда не приводим молча - отклоняем на записи.
func (r *Rating) ValidateShape() error {
	if r.Score < 1 || r.Score > 5 {
		return ErrRatingScoreRange
	}
	if r.AttitudeScore != nil && (*r.AttitudeScore < 1 || *r.AttitudeScore > 5) {
		return ErrRatingScoreRange
	}

	switch r.TargetType {
	case RatingTargetVendor:
		if r.VendorProfileID == nil || r.WaiterProfileID != nil {
			return ErrRatingTargetAmbiguous
		}
		if r.OrderID == nil || r.JobID != nil {
			return ErrRatingTxnMismatch
		}
		if r.AttitudeScore != nil {
			return ErrRatingTxnMismatch
		}
	case RatingTargetWaiter:
		if r.WaiterProfileID == nil || r.VendorProfileID != nil {
			return ErrRatingTargetAmbiguous
		}
		if r.JobID == nil || r.OrderID != nil {
			return ErrRatingTxnMismatch
		}
	default:
		return ErrRatingTargetAmbiguous
	}
	return nil
}

// SetResponse фиксирует ответ оцененной стороны со штампом времени
func (r *Rating) SetResponse(text string) {
	now := time.Now()
	r.Response = &text
	r.RespondedAt = &now
}
