package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsApp(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"3001234567", "https://wa.me/3001234567"},
		{"+57 300 123 4567", "https://wa.me/573001234567"},
		{"(300) 123-45-67", "https://wa.me/3001234567"},
		{"", "https://wa.me/"},
		{"sin números", "https://wa.me/"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, WhatsApp(tc.phone), tc.phone)
	}
}
