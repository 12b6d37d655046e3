package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRatingValidateShape(t *testing.T) {
	vendorRating := func() *Rating {
		return &Rating{
			TargetType:      RatingTargetVendor,
			VendorProfileID: strPtr("vp-1"),
			OrderID:         strPtr("o-1"),
			Score:           5,
		}
	}
	waiterRating := func() *Rating {
		return &Rating{
			TargetType:      RatingTargetWaiter,
			WaiterProfileID: strPtr("wp-1"),
			JobID:           strPtr("j-1"),
			Score:           4,
			AttitudeScore:   intPtr(5),
		}
	}

	assert.NoError(t, vendorRating().ValidateShape())
	assert.NoError(t, waiterRating().ValidateShape())

	t.Run("score out of range", func(t *testing.T) {
		r := vendorRating()
		r.Score = 6
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingScoreRange)

		r = waiterRating()
		r.AttitudeScore = intPtr(0)
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingScoreRange)
	})

	t.Run("both targets set", func(t *testing.T) {
		r := vendorRating()
		r.WaiterProfileID = strPtr("wp-1")
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingTargetAmbiguous)
	})

	t.Run("missing transaction reference", func(t *testing.T) {
		r := vendorRating()
		r.OrderID = nil
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingTxnMismatch)

		w := waiterRating()
		w.JobID = nil
		assert.ErrorIs(t, w.ValidateShape(), ErrRatingTxnMismatch)
	})

	t.Run("wrong transaction kind", func(t *testing.T) {
		r := vendorRating()
		r.JobID = strPtr("j-1")
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingTxnMismatch)
	})

	t.Run("attitude score on vendor rating", func(t *testing.T) {
		r := vendorRating()
		r.AttitudeScore = intPtr(3)
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingTxnMismatch)
	})

	t.Run("unknown target type", func(t *testing.T) {
		r := vendorRating()
		r.TargetType = RatingTargetType("client")
		assert.ErrorIs(t, r.ValidateShape(), ErrRatingTargetAmbiguous)
	})
}

func TestRatingSetResponse(t *testing.T) {
	r := &Rating{}
	r.SetResponse("Thank you")
	assert.NotNil(t, r.Response)
	assert.Equal(t, "Thank you", *r.Response)
	assert.NotNil(t, r.RespondedAt)
}

func TestRatingTargetTypeIsValid(t *testing.T) {
	assert.True(t, RatingTargetVendor.IsValid())
	assert.True(t, RatingTargetWaiter.IsValid())
	assert.False(t, RatingTargetType("client").IsValid())
}
