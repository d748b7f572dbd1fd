package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diteix/hotel-cancun/repository"
	"github.com/diteix/hotel-cancun/services"
	"github.com/diteix/hotel-cancun/utils"
)

type RegisterClientPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type ReservationPayload struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type ClientController struct {
	ClientSvc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{ClientSvc: svc}
}

// CreateClient (POST /api/clients)
func (cc *ClientController) CreateClient(c *gin.Context) {
	var payload RegisterClientPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	client, err := cc.ClientSvc.RegisterClient(payload.Username, payload.Password)
	if err != nil {
		if repository.IsDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Username '%s' already exists.", payload.Username),
			})
			return
		}
		log.Printf("register client failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClient (GET /api/clients/:clientId)
func (cc *ClientController) GetClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	validation, err := cc.ClientSvc.GetClient(clientID)
	if err != nil {
		log.Printf("get client %d failed: %v", clientID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !validation.IsValid {
		c.JSON(http.StatusNotFound, validation)
		return
	}
	c.JSON(http.StatusOK, validation.Value)
}

// GetReservations (GET /api/clients/:clientId/reservations)
func (cc *ClientController) GetReservations(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}

	validation, err := cc.ClientSvc.ListReservations(clientID)
	if err != nil {
		log.Printf("list reservations for client %d failed: %v", clientID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !validation.IsValid {
		c.JSON(http.StatusNotFound, validation)
		return
	}
	c.JSON(http.StatusOK, validation.Value)
}

// CancelReservation (DELETE /api/clients/:clientId/reservations/:reservationId)
func (cc *ClientController) CancelReservation(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}
	reservationID, ok := parseIDParam(c, "reservationId")
	if !ok {
		return
	}

	validation, err := cc.ClientSvc.CancelReservation(clientID, reservationID)
	if err != nil {
		log.Printf("cancel reservation %d failed: %v", reservationID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !validation.IsValid {
		c.JSON(http.StatusNotFound, validation)
		return
	}
	c.Status(http.StatusNoContent)
}

// ModifyReservation (PUT /api/clients/:clientId/reservations/:reservationId).
// Rule violations come back as 400 with the attempted dates echoed; a missing
// client or reservation as 404.
func (cc *ClientController) ModifyReservation(c *gin.Context) {
	clientID, ok := parseIDParam(c, "clientId")
	if !ok {
		return
	}
	reservationID, ok := parseIDParam(c, "reservationId")
	if !ok {
		return
	}

	var payload ReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	from, to, ok := parseDateRange(c, payload.From, payload.To)
	if !ok {
		return
	}

	validation, err := cc.ClientSvc.ModifyReservation(clientID, reservationID, from, to)
	if err != nil {
		log.Printf("modify reservation %d failed: %v", reservationID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if !validation.IsValid && validation.Value != nil {
		c.JSON(http.StatusBadRequest, validation)
		return
	}
	if !validation.IsValid {
		c.JSON(http.StatusNotFound, validation)
		return
	}
	c.Status(http.StatusNoContent)
}
