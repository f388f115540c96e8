package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	repo domain.Repository
}

func NewCatalogHandler(repo domain.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// ======================================================
// BARBERS
// ======================================================

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, httperr.CodeInternal, "Error al listar barberos.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *CatalogHandler) GetBarber(c *gin.Context) {
	barber, err := h.repo.GetBarberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, httperr.CodeBarberNotFound, "Barbero no encontrado.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, httperr.CodeInternal, "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.repo.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Servicio no encontrado.")
		return
	}

	httpresp.OK(c, service)
}
