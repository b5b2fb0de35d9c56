package links

import "strings"

// WhatsApp construye el enlace profundo de chat a partir del teléfono
// tal como lo escribió la clienta: se descartan todos los caracteres no
// numéricos y se incrusta en la plantilla fija.
func WhatsApp(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}
