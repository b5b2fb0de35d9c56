package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// Suggestion es la respuesta del chequeo de un horario: si la franja
// está muy solicitada y, en ese caso, qué alternativas ofrecer.
type Suggestion struct {
	Contended    bool     `json:"contended"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// Checker permite sustituir la heurística por una verificación real de
// disponibilidad sin tocar la lógica del formulario.
type Checker interface {
	Check(date, timeStr string) Suggestion
}

// StaticChecker marca 10:00 y 15:00 como franjas llenas y sugiere tres
// alternativas con desplazamientos fijos. No consulta las reservas
// existentes; es una regla de demo.
type StaticChecker struct{}

func (StaticChecker) Check(_, timeStr string) Suggestion {
	if timeStr != "10:00" && timeStr != "15:00" {
		return Suggestion{}
	}

	hour, err := strconv.Atoi(strings.SplitN(timeStr, ":", 2)[0])
	if err != nil {
		return Suggestion{}
	}

	return Suggestion{
		Contended: true,
		Alternatives: []string{
			fmt.Sprintf("%d:30", hour-1),
			fmt.Sprintf("%d:45", hour),
			fmt.Sprintf("%d:15", hour+1),
		},
	}
}

var _ Checker = StaticChecker{}
