package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/ai"
	"github.com/yurymalaver/salon-crm/internal/httperr"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
)

// Espejo de visagismo: análisis multimodal del rostro contra las
// colecciones del salón.
type MirrorHandler struct {
	mirror *ai.Mirror
}

func NewMirrorHandler(mirror *ai.Mirror) *MirrorHandler {
	return &MirrorHandler{mirror: mirror}
}

type AnalyzeFaceRequest struct {
	// JPEG en base64, con o sin prefijo data:
	Image string `json:"image" binding:"required"`
}

func (h *MirrorHandler) Analyze(c *gin.Context) {
	var req AnalyzeFaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Imagen obligatoria.")
		return
	}

	analysis, err := h.mirror.Analyze(c.Request.Context(), req.Image)
	if err != nil {
		var malformed *ai.MalformedResponse
		if errors.As(err, &malformed) {
			// A diferencia del generador de campañas, aquí no hay
			// valor de relleno: la operación se abandona.
			httperr.Unavailable(c, "analysis_failed",
				"No pudimos analizar la imagen. Intenta de nuevo con otra foto.")
			return
		}
		httperr.Unavailable(c, "ai_unavailable",
			"El análisis no está disponible en este momento.")
		return
	}

	httpresp.OK(c, analysis)
}
