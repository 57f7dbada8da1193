package handlers

import (
	"github.com/gin-gonic/gin"

	account "github.com/winnyfit/booking-api/internal/domain/account"
	"github.com/winnyfit/booking-api/internal/httperr"
	"github.com/winnyfit/booking-api/internal/httpresp"
)

type TrainerHandler struct {
	accounts account.Repository
}

func NewTrainerHandler(accounts account.Repository) *TrainerHandler {
	return &TrainerHandler{accounts: accounts}
}

type trainerListItem struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	PhoneNumber    string `json:"phonenumber"`
	Instagram      string `json:"instagram"`
	Twitter        string `json:"twitter"`
	AvailableTimes string `json:"availableTimes"`
}

// List is the public trainer directory.
func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.accounts.ListTrainers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_trainers", "Could not list trainers.")
		return
	}

	items := make([]trainerListItem, 0, len(trainers))
	for _, t := range trainers {
		items = append(items, trainerListItem{
			ID:             t.ID,
			Name:           t.User.FullName(),
			Specialization: string(t.Specialization),
			PhoneNumber:    t.ContactNumber,
			Instagram:      t.Profile.Instagram,
			Twitter:        t.Profile.Twitter,
			AvailableTimes: t.Available,
		})
	}

	httpresp.List(c, items)
}
