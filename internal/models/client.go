package models

// Tipo de lealtad de una clienta.
type ClientType string

const (
	ClientNuevo     ClientType = "Nuevo"
	ClientFrecuente ClientType = "Frecuente"
	ClientVIP       ClientType = "VIP"
	ClientInactivo  ClientType = "Inactivo"
)

type ServiceRecord struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Date     string  `json:"date"`
	Service  string  `json:"service"`
	Stylist  string  `json:"stylist,omitempty"`
	Price    float64 `json:"price"`
}

type ClientPreferences struct {
	HairType     string   `json:"hair_type"`
	ColorPrefs   []string `json:"color_prefs"`
	ProductsUsed []string `json:"products_used"`
	Allergies    string   `json:"allergies"`
	Notes        string   `json:"notes"`
}

// Cliente del salón. En la vista derivada del CRM el ID es el teléfono y
// solo History/Type/RegistrationDate vienen poblados; los campos extra
// (TotalSpent, Points, Preferences) existen solo en la copia local de demo.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	DOB   string `json:"dob,omitempty"`

	Type             ClientType `json:"type"`
	RegistrationDate string     `json:"registration_date"`

	TotalSpent float64 `json:"total_spent,omitempty"`
	Points     int     `json:"points,omitempty"`

	History     []ServiceRecord    `json:"history,omitempty"`
	Preferences *ClientPreferences `json:"preferences,omitempty"`
}
