package ai

import "fmt"

// MalformedResponse indica que el proveedor devolvió algo que no cumple
// el esquema esperado. Nunca dejamos fluir un objeto sin tipar más allá
// de esta frontera.
type MalformedResponse struct {
	Raw    string
	Reason string
}

func (e *MalformedResponse) Error() string {
	return fmt.Sprintf("malformed AI response: %s", e.Reason)
}
