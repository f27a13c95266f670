package booking

import (
	"context"

	"github.com/agendly-app/booking-api/internal/audit"
	domain "github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	staffID uint,
	userID uint,
) error {

	b, err := uc.repo.GetBookingForStaff(ctx, bookingID, staffID)
	if err != nil {
		return err
	}

	biz, err := uc.repo.GetBusinessByID(ctx, b.BusinessID)
	if err != nil {
		return err
	}

	if err := domain.Cancel(b, timezone.NowIn(biz.Timezone)); err != nil {
		return err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: b.BusinessID,
		UserID:     &userID,
		Action:     "booking_cancelled",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return nil
}
