package chat

import (
	"fmt"
	"strings"

	"github.com/barberiapro/booking-api/internal/models"
)

const promptHeader = `Eres un asistente virtual amigable de "Barbería Pro", una barbería moderna y profesional.

INFORMACIÓN DE LA BARBERÍA:
- Nombre: Barbería Pro
- Ubicación: Av. Principal 123, Centro
- Teléfono: +52 123 456 7890

HORARIOS:
- Lunes a Viernes: 9:00 AM - 8:00 PM
- Sábado: 9:00 AM - 7:00 PM
- Domingo: 10:00 AM - 4:00 PM`

const promptInstructions = `INSTRUCCIONES:
- Sé amigable, profesional y servicial
- Responde en español de manera clara y concisa
- Si te preguntan por reservas, menciona que pueden usar el sistema de reservas en línea
- Proporciona información precisa sobre servicios, precios y horarios
- Si no sabes algo, sé honesto y sugiere contactar directamente a la barbería
- Usa un tono conversacional y cercano`

// SystemPrompt embeds the live catalog into the assistant's business
// context so the AI answers with current services and staff.
func SystemPrompt(barbers []models.Barber, services []models.Service) string {
	var b strings.Builder

	b.WriteString(promptHeader)

	b.WriteString("\n\nSERVICIOS Y PRECIOS:\n")
	for i, s := range services {
		fmt.Fprintf(&b, "%d. %s - $%d (%d min)\n", i+1, s.Name, s.Price, s.Duration)
	}

	b.WriteString("\nBARBEROS:\n")
	for i, br := range barbers {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, br.Name, br.Specialty)
	}

	b.WriteString("\n")
	b.WriteString(promptInstructions)

	return b.String()
}
