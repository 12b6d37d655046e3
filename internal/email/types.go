package email

// Email представляет структуру email сообщения
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    string
}

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}

// Виды писем, которые умеет отправлять платформа
const (
	KindWelcome          = "welcome"
	KindPasswordReset    = "password-reset"
	KindBookingConfirmed = "booking-confirmed"
	KindBookingReceived  = "booking-received"
	KindJobOffer         = "job-offer"
	KindAccountApproved  = "account-approved"
)
