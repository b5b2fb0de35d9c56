package ai

import "context"

// Generator abstrae al proveedor generativo. Ambas llamadas piden al
// proveedor una respuesta en formato JSON; el parseo y la validación
// ocurren en los servicios que las consumen.
type Generator interface {
	// GenerateText produce una completación dada una instrucción de
	// sistema y un prompt libre.
	GenerateText(ctx context.Context, system, prompt string) (string, error)

	// GenerateVision analiza una imagen (base64, sin prefijo data:)
	// junto con un prompt.
	GenerateVision(ctx context.Context, mimeType, imageB64, prompt string) (string, error)
}
