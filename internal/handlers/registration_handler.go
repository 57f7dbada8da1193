package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/httpresp"
	ucRegistration "github.com/winnyfit/booking-api/internal/usecase/registration"
)

// ======================================================
// HANDLER
// ======================================================

type RegistrationHandler struct {
	registerTrainerUC  *ucRegistration.RegisterTrainer
	registerCustomerUC *ucRegistration.RegisterCustomer
}

func NewRegistrationHandler(
	registerTrainerUC *ucRegistration.RegisterTrainer,
	registerCustomerUC *ucRegistration.RegisterCustomer,
) *RegistrationHandler {
	return &RegistrationHandler{
		registerTrainerUC:  registerTrainerUC,
		registerCustomerUC: registerCustomerUC,
	}
}

// ======================================================
// TRAINER
// ======================================================

func (h *RegistrationHandler) RegisterTrainer(c *gin.Context) {
	var in ucRegistration.RegisterTrainerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if _, err := h.registerTrainerUC.Execute(c.Request.Context(), in); err != nil {
		if fe, ok := httperr.AsFieldError(err); ok {
			httperr.Fields(c, fe.Fields)
			return
		}
		httperr.Internal(c, "registration_failed", "Could not register trainer.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Trainer registered successfully.")
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *RegistrationHandler) RegisterCustomer(c *gin.Context) {
	var in ucRegistration.RegisterCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if _, err := h.registerCustomerUC.Execute(c.Request.Context(), in); err != nil {
		if fe, ok := httperr.AsFieldError(err); ok {
			httperr.Fields(c, fe.Fields)
			return
		}
		httperr.Internal(c, "registration_failed", "Could not register customer.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Customer created successfully")
}
