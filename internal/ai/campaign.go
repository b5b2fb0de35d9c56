package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yurymalaver/salon-crm/internal/catalog"
)

// Campaign es el texto de promoción generado por el estudio de marketing.
type Campaign struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Marketing genera copys de promoción con el contexto de marca del salón.
type Marketing struct {
	gen Generator
	log *logrus.Logger
}

func NewMarketing(gen Generator, log *logrus.Logger) *Marketing {
	return &Marketing{gen: gen, log: log}
}

func systemContext() string {
	return fmt.Sprintf(`Eres el Director de Marketing de "%s", un salón de belleza de Alta Costura y Tecnología.
Nuestros servicios principales son: %s.
Tu tono de voz es: Elegante, Sofisticado, Exclusivo y Cercano.
Nunca uses emojis en exceso. Usa un lenguaje de lujo.`,
		catalog.AppName,
		strings.Join(catalog.Services, ", "),
	)
}

// GenerateCampaign pide un título y una descripción en JSON. Si la
// respuesta no parsea, se degrada a un título genérico con el texto
// crudo como descripción; el parseo fallido nunca llega al usuario.
func (m *Marketing) GenerateCampaign(ctx context.Context, prompt string) (Campaign, error) {
	task := fmt.Sprintf(`Tarea: Crea un título corto y una descripción persuasiva para una promoción basada en: "%s".
Devuelve SOLO un objeto JSON válido con este formato: {"title": "...", "description": "..."}`, prompt)

	raw, err := m.gen.GenerateText(ctx, systemContext(), task)
	if err != nil {
		return Campaign{}, err
	}

	campaign := Campaign{
		Title:       "Promoción Especial",
		Description: raw,
	}

	var parsed Campaign
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		m.log.WithError(err).Warn("respuesta de campaña no parseó como JSON, se usa el fallback")
	} else {
		if parsed.Title != "" {
			campaign.Title = parsed.Title
		}
		if parsed.Description != "" {
			campaign.Description = parsed.Description
		}
	}

	campaign.ImageURL = CampaignImageURL(prompt)
	return campaign, nil
}

// Los proveedores a veces envuelven el JSON en un bloque de código
// aunque se pida responseMimeType application/json.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
