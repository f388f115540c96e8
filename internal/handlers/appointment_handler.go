package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/httpresp"
	ucAppointment "github.com/barberiapro/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	BarberID      string `json:"barber_id"`
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:mm
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la solicitud inválido.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.Invalid(c, "Datos de la cita inválidos.", ve.Fields)
			return
		}
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			httperr.Conflict(c, httperr.CodeSlotTaken, "El horario ya está reservado.")
			return
		}
		httperr.Internal(c, httperr.CodeInternal, "Error al crear la cita.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		BarberID: c.Query("barber_id"),
		Date:     c.Query("date"),
	})
	if err != nil {
		httperr.Internal(c, httperr.CodeInternal, "Error al listar citas.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	date := c.Query("date")

	if barberID == "" || date == "" {
		httperr.BadRequest(c, httperr.CodeMissingParams, "Barbero y fecha obligatorios.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.Invalid(c, "Fecha inválida.", ve.Fields)
			return
		}
		if httperr.IsBusiness(err, httperr.CodeBarberNotFound) {
			httperr.NotFound(c, httperr.CodeBarberNotFound, "Barbero no encontrado.")
			return
		}
		httperr.Internal(c, httperr.CodeInternal, "Error al consultar disponibilidad.")
		return
	}

	httpresp.List(c, slots)
}
