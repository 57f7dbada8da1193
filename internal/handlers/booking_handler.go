package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/winnyfit/booking-api/internal/domain/booking"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/httpresp"
	"github.com/winnyfit/booking-api/internal/middleware"
	ucBooking "github.com/winnyfit/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListSessions
	startUC  *ucBooking.StartSession
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListSessions,
	startUC *ucBooking.StartSession,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		startUC:  startUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SessionType string `json:"session_type" binding:"required"`
	Title       string `json:"title"`
	TrainerID   uint   `json:"trainer_id"`
	Instructor  string `json:"instructor"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "session_type, date and time are required.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerUserID: userID,
		SessionType:    req.SessionType,
		Title:          req.Title,
		TrainerID:      req.TrainerID,
		Instructor:     req.Instructor,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "trainer_not_found"):
			httperr.NotFound(c, "trainer_not_found", "Trainer not found.")
		case httperr.IsBusiness(err, "customer_not_found"):
			httperr.NotFound(c, "customer_not_found", "No customer profile for this account.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		default:
			if fe, ok := httperr.AsFieldError(err); ok {
				httperr.Fields(c, fe.Fields)
				return
			}
			httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		}
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "Booking created successfully",
		"booking_id":  b.ID,
		"meeting_id":  b.MeetingID,
		"meeting_url": domain.MeetingURL(b.MeetingID),
	})
}

// ======================================================
// WINDOWED LISTS
// ======================================================

func (h *BookingHandler) Upcoming(c *gin.Context) {
	h.list(c, h.listUC.UpcomingForCustomer)
}

func (h *BookingHandler) Past(c *gin.Context) {
	h.list(c, h.listUC.PastForCustomer)
}

func (h *BookingHandler) TrainerUpcoming(c *gin.Context) {
	h.list(c, h.listUC.UpcomingForTrainer)
}

func (h *BookingHandler) TrainerPast(c *gin.Context) {
	h.list(c, h.listUC.PastForTrainer)
}

func (h *BookingHandler) list(
	c *gin.Context,
	query func(ctx context.Context, userID uint) ([]ucBooking.SessionView, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	sessions, err := query(c.Request.Context(), userID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "customer_not_found"):
			httperr.NotFound(c, "customer_not_found", "No customer profile for this account.")
		case httperr.IsBusiness(err, "trainer_not_found"):
			httperr.NotFound(c, "trainer_not_found", "No trainer profile for this account.")
		default:
			httperr.Internal(c, "failed_to_list_sessions", "Could not list sessions.")
		}
		return
	}

	httpresp.List(c, sessions)
}

// ======================================================
// START SESSION
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.startUC.Execute(c.Request.Context(), userID, uint(bookingID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "not_assigned_trainer"):
			httperr.Forbidden(c, "not_assigned_trainer", "Only the assigned trainer can start this session.")
		default:
			httperr.Internal(c, "failed_to_start_session", "Could not start session.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Session started.",
		"booking_id":      b.ID,
		"session_started": b.SessionStarted,
	})
}
