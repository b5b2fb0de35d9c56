package ai

import "strings"

// Imágenes curadas por palabra clave para las campañas. No hay backend
// de generación de imágenes: se mapean términos del prompt a fotos de
// stock de calidad garantizada.
var campaignImages = []struct {
	keywords []string
	url      string
}{
	{[]string{"uña", "nails", "tinto"}, "https://images.unsplash.com/photo-1519014816548-bf5fe059e98b?auto=format&fit=crop&w=800&q=80"},
	{[]string{"novia", "boda", "matrimonio"}, "https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?auto=format&fit=crop&w=800&q=80"},
	{[]string{"rubio", "balayage", "color"}, "https://images.unsplash.com/photo-1562322140-8baeececf3df?auto=format&fit=crop&w=800&q=80"},
	{[]string{"corte", "cabello"}, "https://images.unsplash.com/photo-1605497788044-5a32c7078486?auto=format&fit=crop&w=800&q=80"},
	{[]string{"rostro", "facial", "visagismo"}, "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?auto=format&fit=crop&w=800&q=80"},
}

const defaultCampaignImage = "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&w=800&q=80"

func CampaignImageURL(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, entry := range campaignImages {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.url
			}
		}
	}
	return defaultCampaignImage
}
