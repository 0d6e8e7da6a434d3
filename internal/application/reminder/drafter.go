// Package reminder redacta el mensaje de cobro para un cliente con saldo pendiente,
// con plantilla local o delegando en un proveedor de texto.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cartera-api/internal/application/ports"
	"github.com/jhoicas/Cartera-api/pkg/money"
)

// Textos fijos devueltos sin pasar por el proveedor.
const (
	NoBalanceMessage = "This customer has no outstanding balance."
	FailureMessage   = "Could not generate a reminder right now. Please try again."
)

const (
	systemPrompt = "You write short payment reminders for a small business. " +
		"Reply with the message text only, no subject line and no placeholders."
	promptTemplate = "Write a short, friendly and professional payment reminder message " +
		"for a customer named %s who has an outstanding balance of %s. Keep it under 60 words."
	templateMessage = "Hi %s, this is a friendly reminder that you have an outstanding balance of %s. " +
		"Please make the payment at your earliest convenience. Thank you!"

	defaultTimeout = 10 * time.Second
)

// Source origen del mensaje devuelto.
type Source string

const (
	SourceNone     Source = "none"     // saldo <= 0, no se generó nada
	SourceTemplate Source = "template" // plantilla local
	SourceService  Source = "service"  // proveedor externo
	SourceFallback Source = "fallback" // el proveedor falló, texto fijo de error
)

// Result mensaje listo para mostrar.
type Result struct {
	Message string
	Source  Source
}

// Drafter redacta recordatorios. Con llm nil siempre usa la plantilla local.
type Drafter struct {
	llm     ports.LLMService
	money   *money.Formatter
	log     zerolog.Logger
	timeout time.Duration
}

// NewDrafter construye el drafter. Pasar llm nil cuando no hay credencial configurada.
func NewDrafter(llm ports.LLMService, formatter *money.Formatter, log zerolog.Logger) *Drafter {
	return &Drafter{llm: llm, money: formatter, log: log, timeout: defaultTimeout}
}

// UsesService indica si Generate llamará al proveedor externo.
func (d *Drafter) UsesService() bool { return d.llm != nil }

// Draft plantilla local determinista con nombre y monto formateado.
func (d *Drafter) Draft(customerName string, due decimal.Decimal) string {
	return fmt.Sprintf(templateMessage, strings.TrimSpace(customerName), d.money.Format(due))
}

// DraftViaService pide el mensaje al proveedor. Ante cualquier falla devuelve
// FailureMessage; el llamador solo necesita mostrar el texto.
func (d *Drafter) DraftViaService(ctx context.Context, customerName string, due decimal.Decimal) string {
	text, err := d.draftViaService(ctx, customerName, due)
	if err != nil {
		return FailureMessage
	}
	return text
}

// Generate aplica la regla completa: saldo <= 0 no genera nada; con proveedor
// configurado lo usa; si no, plantilla local.
func (d *Drafter) Generate(ctx context.Context, customerName string, due decimal.Decimal) Result {
	if !due.IsPositive() {
		return Result{Message: NoBalanceMessage, Source: SourceNone}
	}
	if d.llm == nil {
		return Result{Message: d.Draft(customerName, due), Source: SourceTemplate}
	}
	text, err := d.draftViaService(ctx, customerName, due)
	if err != nil {
		return Result{Message: FailureMessage, Source: SourceFallback}
	}
	return Result{Message: text, Source: SourceService}
}

func (d *Drafter) draftViaService(ctx context.Context, customerName string, due decimal.Decimal) (string, error) {
	if d.llm == nil {
		return "", fmt.Errorf("recordatorio: proveedor de texto no configurado")
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	prompt := fmt.Sprintf(promptTemplate, strings.TrimSpace(customerName), d.money.Format(due))
	text, err := d.llm.GenerateText(ctx, systemPrompt, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = fmt.Errorf("respuesta vacía")
	}
	if err != nil {
		d.log.Error().Err(err).Str("customer", customerName).Msg("recordatorio: proveedor falló")
		return "", fmt.Errorf("recordatorio: %w", err)
	}
	return strings.TrimSpace(text), nil
}
