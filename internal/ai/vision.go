package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/catalog"
)

// VisionAnalysis es el resultado del espejo de visagismo. El esquema es
// estricto: todos los campos deben venir poblados.
type VisionAnalysis struct {
	FaceShape       string `json:"faceShape"`
	SkinTone        string `json:"skinTone"`
	SuggestedHair   string `json:"suggestedHair"`
	SuggestedMakeup string `json:"suggestedMakeup"`
	SuggestedNails  string `json:"suggestedNails"`
	Reasoning       string `json:"reasoning"`
}

type Mirror struct {
	gen Generator
	log *logrus.Logger
}

func NewMirror(gen Generator, log *logrus.Logger) *Mirror {
	return &Mirror{gen: gen, log: log}
}

func visionPrompt() string {
	return fmt.Sprintf(`Actúa como un consultor de belleza de alta costura y experto en visagismo (%s).
Analiza la imagen proporcionada (el rostro del usuario).
Determina la forma del rostro (ovalado, cuadrado, etc.) y el tono de piel.
Basado en esto, recomienda UNO de cada uno de los siguientes estilos de nuestra colección exclusiva:

Colección Cabello: [%s]
Colección Maquillaje: [%s]
Colección Uñas: [%s]

Responde SOLAMENTE en formato JSON con la siguiente estructura (en español):
{
  "faceShape": "string",
  "skinTone": "string",
  "suggestedHair": "string (nombre exacto de la lista)",
  "suggestedMakeup": "string (nombre exacto de la lista)",
  "suggestedNails": "string (nombre exacto de la lista)",
  "reasoning": "Breve explicación elegante y sofisticada de por qué estos estilos favorecen sus rasgos."
}`,
		catalog.AppName,
		strings.Join(catalog.StyleNames(catalog.HairStyles), ", "),
		strings.Join(catalog.StyleNames(catalog.MakeupStyles), ", "),
		strings.Join(catalog.StyleNames(catalog.NailStyles), ", "),
	)
}

// Analyze corre el análisis multimodal sobre un JPEG en base64. Una
// respuesta que no cumpla el esquema se reporta como *MalformedResponse
// y la operación se abandona: aquí no hay valor de relleno.
func (m *Mirror) Analyze(ctx context.Context, imageB64 string) (*VisionAnalysis, error) {
	raw, err := m.gen.GenerateVision(ctx, "image/jpeg", stripDataURLPrefix(imageB64), visionPrompt())
	if err != nil {
		return nil, err
	}

	var analysis VisionAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &analysis); err != nil {
		m.log.WithError(err).Error("respuesta de visagismo no parseó")
		return nil, &MalformedResponse{Raw: raw, Reason: "invalid JSON"}
	}

	if missing := missingField(analysis); missing != "" {
		return nil, &MalformedResponse{Raw: raw, Reason: "missing field " + missing}
	}

	return &analysis, nil
}

// Los formularios suelen mandar la imagen como data URL; el proveedor
// solo acepta el base64 desnudo.
func stripDataURLPrefix(payload string) string {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		return payload[idx+1:]
	}
	return payload
}

func missingField(a VisionAnalysis) string {
	switch {
	case a.FaceShape == "":
		return "faceShape"
	case a.SkinTone == "":
		return "skinTone"
	case a.SuggestedHair == "":
		return "suggestedHair"
	case a.SuggestedMakeup == "":
		return "suggestedMakeup"
	case a.SuggestedNails == "":
		return "suggestedNails"
	case a.Reasoning == "":
		return "reasoning"
	}
	return ""
}
