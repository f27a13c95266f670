package booking

import (
	"context"

	"github.com/agendly-app/booking-api/internal/audit"
	domain "github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
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

	if err := domain.Complete(b, timezone.NowIn(biz.Timezone)); err != nil {
		return err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: b.BusinessID,
		UserID:     &userID,
		Action:     "booking_completed",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return nil
}
