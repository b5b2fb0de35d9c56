package catalog

// Carta de servicios y colecciones del salón. Los textos son los que
// se muestran en la página pública y los que se inyectan en los prompts
// de marketing y visagismo.

const AppName = "Yury Malaver"

// Precio estimado por visita usado en el roster derivado y en el KPI de
// ingresos del dashboard. Es una aproximación, no una cifra contable.
const EstimatedServicePrice = 80000

var Services = []string{
	"Corte & Diseño Capilar",
	"Coloración & Balayage",
	"Peinado & Styling",
	"Manicura Tono Vino (Especialidad)",
	"Manicura Rusa & Pedicura",
	"Asesoría de Imagen (Visagismo)",
	"Maquillaje Social/Novias",
	"Tratamientos de Restauración",
}

// Servicio sintético usado por el registro manual de clientas en el CRM.
const ManualRegistrationService = "Registro Manual"

type StyleOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

var HairStyles = []StyleOption{
	{ID: "h1", Name: "Corte Bob Italiano", Category: "hair", Description: "Elegancia atemporal con volumen y movimiento."},
	{ID: "h2", Name: "Balayage Premium", Category: "hair", Description: "Iluminación diseñada a mano para tu tono de piel."},
	{ID: "h3", Name: "Peinados de Gala", Category: "hair", Description: "Recogidos sofisticados y ondas de alfombra roja."},
}

var MakeupStyles = []StyleOption{
	{ID: "m1", Name: "Maquillaje Social", Category: "makeup", Description: "Piel perfecta y acabados duraderos para eventos."},
	{ID: "m2", Name: "Novias", Category: "makeup", Description: "Diseño de imagen integral para tu gran día."},
	{ID: "m3", Name: "Editorial", Category: "makeup", Description: "Estilos vanguardistas para sesiones fotográficas."},
}

var NailStyles = []StyleOption{
	{ID: "n1", Name: "Uñas Tinto Signature", Category: "nails", Description: "Nuestra especialidad: Profundidad y elegancia en tonos vino."},
	{ID: "n2", Name: "Manicura Rusa", Category: "nails", Description: "Limpieza profunda y acabados perfectos."},
	{ID: "n3", Name: "Nail Art Minimalista", Category: "nails", Description: "Diseños sutiles con acentos dorados y geométricos."},
}

var PaletteColors = []string{
	"Vino Tinto", "Burgundy", "Marsala", "Dorado", "Negro Profundo", "Champagne", "Rojo Cereza", "Nude Rosado",
}

// IsService valida que el nombre pertenezca a la carta fija. El registro
// manual también cuenta como servicio válido.
func IsService(name string) bool {
	if name == ManualRegistrationService {
		return true
	}
	for _, s := range Services {
		if s == name {
			return true
		}
	}
	return false
}

func StyleNames(options []StyleOption) []string {
	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Name)
	}
	return names
}
