package chat

import "strings"

// Canned replies served when the AI backend cannot answer.
const (
	fallbackHours = `¡Claro! Nuestros horarios son:

📅 Lunes a Viernes: 9:00 AM - 8:00 PM
📅 Sábado: 9:00 AM - 7:00 PM
📅 Domingo: 10:00 AM - 4:00 PM

¿Te gustaría reservar una cita?`

	fallbackServices = `¡Ofrecemos una variedad de servicios profesionales!

✂️ Corte de Cabello - $250 (30 min)
🧔 Arreglo de Barba - $150 (20 min)
💈 Corte + Barba - $350 (45 min)
🎨 Coloración - $450 (60 min)
💆 Tratamiento Capilar - $350 (40 min)
🪒 Afeitado Tradicional - $200 (25 min)

¿Qué servicio te interesa?`

	fallbackPrices = `Nuestros precios son muy competitivos:

• Corte de Cabello: $250
• Arreglo de Barba: $150
• Corte + Barba (paquete): $350
• Coloración: $450
• Tratamiento Capilar: $350
• Afeitado Tradicional: $200

¡Todos nuestros servicios incluyen atención profesional de calidad!`

	fallbackLocation = `📍 Estamos ubicados en:

Av. Principal 123, Centro

📞 Teléfono: +52 123 456 7890

¡Te esperamos!`

	fallbackBooking = `¡Excelente! Para reservar tu cita:

1. Haz clic en el botón "Reservar" en el menú
2. Selecciona tu barbero preferido
3. Elige el servicio que deseas
4. Escoge fecha y hora
5. ¡Listo!

También puedes llamarnos al +52 123 456 7890`

	fallbackStaff = `Contamos con un equipo de barberos expertos:

👨‍🦱 Carlos Martínez - Especialista en cortes clásicos y modernos
👨‍🦰 Miguel Ángel - Experto en barbas y fade cuts
👩‍🦰 Ana García - Coloración y tratamientos capilares

Todos con años de experiencia y 5 estrellas de calificación. ¿Quieres reservar con alguno?`

	fallbackDefault = `¡Hola! Soy el asistente de Barbería Pro. Puedo ayudarte con:

• Horarios de atención
• Servicios y precios
• Información de nuestros barberos
• Ubicación y contacto
• Proceso de reserva

¿Qué te gustaría saber?`
)

type fallbackRule struct {
	keywords []string
	response string
}

// fallbackRules is evaluated in order and the first match wins. The
// priority (hours before prices, booking before staff, ...) is load
// bearing: overlapping keywords must resolve to the earlier category.
var fallbackRules = []fallbackRule{
	{keywords: []string{"horario", "hora", "abierto"}, response: fallbackHours},
	{keywords: []string{"servicio", "qué ofrec", "que ofrec"}, response: fallbackServices},
	{keywords: []string{"precio", "costo", "cuanto cuesta", "cuánto cuesta"}, response: fallbackPrices},
	{keywords: []string{"ubicación", "ubicacion", "dirección", "direccion", "dónde", "donde"}, response: fallbackLocation},
	{keywords: []string{"reserv", "cita", "agendar"}, response: fallbackBooking},
	{keywords: []string{"barber", "estilista", "quien", "quién"}, response: fallbackStaff},
}

// Fallback routes free text to the first matching canned reply, or to the
// generic greeting when nothing matches.
func Fallback(message string) string {
	lower := strings.ToLower(message)

	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.response
			}
		}
	}

	return fallbackDefault
}
