package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Шаблоны писем. Держим их в коде: видов мало, а деплой без
// внешней директории шаблонов проще.
var kindTemplates = map[string]struct {
	Subject string
	Body    string
}{
	KindWelcome: {
		Subject: "Welcome to Servora",
		Body:    `<p>Hi {{.Name}},</p><p>Your account has been created. Welcome aboard!</p>`,
	},
	KindPasswordReset: {
		Subject: "Password reset request",
		Body:    `<p>Hi {{.Name}},</p><p>Use this token to reset your password: <b>{{.Token}}</b></p><p>If you did not request a reset, ignore this email.</p>`,
	},
	KindBookingConfirmed: {
		Subject: "Your booking is confirmed",
		Body:    `<p>Hi {{.Name}},</p><p>Your booking for {{.EventDate}} has been confirmed by {{.VendorName}}.</p>`,
	},
	KindBookingReceived: {
		Subject: "New booking request",
		Body:    `<p>Hi {{.Name}},</p><p>You received a new booking request for {{.EventDate}}.</p>`,
	},
	KindJobOffer: {
		Subject: "New job offer",
		Body:    `<p>Hi {{.Name}},</p><p>You have a new job offer: {{.Position}} on {{.EventDate}}, rate {{.HourlyRate}}/h.</p>`,
	},
	KindAccountApproved: {
		Subject: "Your account has been approved",
		Body:    `<p>Hi {{.Name}},</p><p>Your profile was approved. You can now take part in the marketplace.</p>`,
	},
}

// renderKind рендерит тему и тело письма заданного вида
func renderKind(kind string, data TemplateData) (subject, html string, err error) {
	tpl, ok := kindTemplates[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown email kind %q", kind)
	}

	t, err := template.New(kind).Parse(tpl.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %q: %w", kind, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render template %q: %w", kind, err)
	}

	return tpl.Subject, buf.String(), nil
}
