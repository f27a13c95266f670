package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendly-app/booking-api/internal/httperr"
	"github.com/agendly-app/booking-api/internal/models"
	ucAvailability "github.com/agendly-app/booking-api/internal/usecase/availability"
	ucBooking "github.com/agendly-app/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAvailability.GetAvailability
	createUC       *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAvailability.GetAvailability,
	createUC *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	StaffID       uint   `json:"staff_id"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var biz models.Business
	if err := h.db.Where("slug = ?", slug).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("business_id = ? AND active = true", biz.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": biz,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Date is required.")
		return
	}

	serviceID, ok := optionalUintQuery(c, "service_id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}
	staffID, ok := optionalUintQuery(c, "staff_id")
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Invalid staff member.")
		return
	}

	result, err := h.availabilityUC.Execute(
		c.Request.Context(),
		ucAvailability.Input{
			Slug:      slug,
			Date:      dateStr,
			ServiceID: serviceID,
			StaffID:   staffID,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "business_not_found"):
			httperr.NotFound(c, "business_not_found", "Business not found.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Invalid service.")
		default:
			httperr.Internal(c, "availability_failed", "Failed to compute time slots.")
		}
		return
	}

	if result.Closed {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"slots":   result.Slots,
			"message": result.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"slots":              result.Slots,
		"slotDuration":       result.SlotDuration,
		"staffSelectionMode": result.StaffSelectionMode,
		"staffCount":         result.StaffCount,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING (WRITE PATH)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BusinessSlug:  slug,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			ServiceID:     req.ServiceID,
			StaffID:       req.StaffID,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)

	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func mapCreateBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "business_not_found"):
		httperr.NotFound(c, "business_not_found", "Business not found.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "That time has already passed.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Invalid service.")
	case httperr.IsBusiness(err, "staff_not_available"):
		httperr.BadRequest(c, "staff_not_available", "That staff member cannot take this booking.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Outside working hours.")
	case httperr.IsBusiness(err, "slot_taken"):
		// lost the race against a concurrent booking; pick another slot
		httperr.Conflict(c, "slot_taken", "That slot was just taken. Please choose another.")
	default:
		httperr.Internal(c, "booking_failed", "Failed to create booking.")
	}
}

func optionalUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
