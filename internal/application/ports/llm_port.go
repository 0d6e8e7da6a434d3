package ports

import "context"

// LLMService define el puerto de salida para los servicios de generación de texto.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
type LLMService interface {
	// GenerateText envía el prompt con la instrucción de sistema y devuelve el texto
	// libre del modelo. El contexto debe llevar un timeout.
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}
