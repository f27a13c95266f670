package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/httpresp"
	"github.com/agendly-app/booking-api/internal/middleware"
	ucBooking "github.com/agendly-app/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	listUC     *ucBooking.ListBookingsByDate
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
}

func NewBookingHandler(
	listUC *ucBooking.ListBookingsByDate,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		listUC:     listUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

func staffFromContext(c *gin.Context) (uint, uint, uint, bool) {
	userIDVal, _ := c.Get(middleware.ContextUserID)
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	staffIDVal, ok := c.Get(middleware.ContextStaffID)
	if !ok {
		return 0, 0, 0, false
	}
	return userIDVal.(uint), businessIDVal.(uint), staffIDVal.(uint), true
}

// GET /api/me/bookings?date=YYYY-MM-DD
func (h *BookingHandler) ListByDate(c *gin.Context) {
	_, businessID, staffID, ok := staffFromContext(c)
	if !ok {
		httperr.BadRequest(c, "no_staff_profile", "This account has no staff profile.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), staffID, businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, items)
}

// PATCH /api/me/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, _, staffID, ok := staffFromContext(c)
	if !ok {
		httperr.BadRequest(c, "no_staff_profile", "This account has no staff profile.")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), uint(bookingID), staffID, userID); err != nil {
		mapStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// PATCH /api/me/bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	userID, _, staffID, ok := staffFromContext(c)
	if !ok {
		httperr.BadRequest(c, "no_staff_profile", "This account has no staff profile.")
		return
	}

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	if err := h.completeUC.Execute(c.Request.Context(), uint(bookingID), staffID, userID); err != nil {
		mapStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

func mapStateChangeError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "invalid_state") {
		httperr.BadRequest(c, "invalid_state", "This booking can no longer be changed.")
		return
	}
	httperr.NotFound(c, "booking_not_found", "Booking not found.")
}

// parseDate only extracts the calendar day; the usecase re-anchors it
// in the tenant timezone.
func parseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}
