package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/httpresp"
	ucChat "github.com/barberiapro/booking-api/internal/usecase/chat"
)

// ======================================================
// HANDLER
// ======================================================

type ChatHandler struct {
	sendUC    *ucChat.SendMessage
	historyUC *ucChat.GetHistory
}

func NewChatHandler(
	sendUC *ucChat.SendMessage,
	historyUC *ucChat.GetHistory,
) *ChatHandler {
	return &ChatHandler{
		sendUC:    sendUC,
		historyUC: historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SendChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ======================================================
// SEND
// ======================================================

func (h *ChatHandler) Send(c *gin.Context) {
	var req SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Cuerpo de la solicitud inválido.")
		return
	}

	assistant, err := h.sendUC.Execute(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.Invalid(c, "Sesión y mensaje obligatorios.", ve.Fields)
			return
		}
		httperr.Internal(c, httperr.CodeTranscriptFailed, "Error al procesar el mensaje.")
		return
	}

	httpresp.OK(c, gin.H{
		"success": true,
		"reply":   assistant,
	})
}

// ======================================================
// HISTORY
// ======================================================

func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.historyUC.Execute(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeSessionRequired) {
			httperr.BadRequest(c, httperr.CodeSessionRequired, "Sesión obligatoria.")
			return
		}
		httperr.Internal(c, httperr.CodeTranscriptFailed, "Error al obtener el historial.")
		return
	}

	httpresp.List(c, messages)
}
