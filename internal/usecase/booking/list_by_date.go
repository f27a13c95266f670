package booking

import (
	"context"
	"time"

	domain "github.com/agendly-app/booking-api/internal/domain/booking"
	"github.com/agendly-app/booking-api/internal/timezone"
)

type BookingListItem struct {
	ID           uint       `json:"id"`
	Reference    string     `json:"reference"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name"`
	ServiceName  string     `json:"service_name"`
}

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	staffID uint,
	businessID uint,
	date time.Time,
) ([]BookingListItem, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(biz.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListForStaffDay(ctx, staffID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingListItem{
			ID:           b.ID,
			Reference:    b.Reference,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			CustomerName: b.Customer.Name,
			ServiceName:  b.Service.Name,
		})
	}

	return out, nil
}
