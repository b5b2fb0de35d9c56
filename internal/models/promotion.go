package models

type Promotion struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DiscountCode string `json:"discount_code,omitempty"`
	ValidUntil   string `json:"valid_until,omitempty"`
	Image        string `json:"image,omitempty"`
	Target       string `json:"target_audience,omitempty"`
}
