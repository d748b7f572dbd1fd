package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diteix/hotel-cancun/services"
	"github.com/diteix/hotel-cancun/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type BookingPayload struct {
	From     string `json:"from" binding:"required"`
	To       string `json:"to" binding:"required"`
	ClientID uint   `json:"clientId" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms (GET /api/rooms)
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.ListRooms()
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom (GET /api/rooms/:roomId) returns the room with its reservations,
// or the validation body with 404 when the room does not exist.
func (rc *RoomController) GetRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}

	validation, err := rc.RoomSvc.GetRoomWithReservations(roomID)
	if err != nil {
		log.Printf("get room %d failed: %v", roomID, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if !validation.IsValid {
		c.JSON(http.StatusNotFound, validation)
		return
	}
	c.JSON(http.StatusOK, validation.Value)
}

// BookRoom (POST /api/rooms/:roomId/reservation). A rule violation comes back
// as 400 with the rejected candidate echoed; a missing room as 404.
func (rc *RoomController) BookRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}

	var payload BookingPayload
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

	validation, err := rc.RoomSvc.AddReservation(roomID, payload.ClientID, from, to)
	if err != nil {
		log.Printf("book room %d failed: %v", roomID, err)
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

	c.JSON(http.StatusCreated, gin.H{
		"roomId":   roomID,
		"clientId": payload.ClientID,
		"from":     from,
		"to":       to,
	})
}

// ---------------------------
// Helpers shared by the controllers
// ---------------------------

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts plain dates (2006-01-02) or RFC3339 timestamps; the time
// of day is discarded downstream either way.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func parseDateRange(c *gin.Context, rawFrom, rawTo string) (time.Time, time.Time, bool) {
	from, err := parseDate(rawFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid 'from' date; expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	to, err := parseDate(rawTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid 'to' date; expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
