package mail

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/garage-routhier/go-garage-backend/internal/config"
	"github.com/garage-routhier/go-garage-backend/internal/domain"
)

// Templates builds the four transactional messages sent on form submission.
// Content is French, matching the public site.
type Templates struct {
	Garage config.GarageConfig
}

// frDate renders a timestamp the way the site shows it (fr-CH order).
func frDate(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

func esc(s string) string { return html.EscapeString(s) }

// ContactOwnerNotice is the email sent to the garage address when a contact
// request comes in.
func (tp Templates) ContactOwnerNotice(r *domain.ContactRequest) Message {
	subject := fmt.Sprintf("Nouvelle demande de contact - %s", r.Sujet)

	textBody := fmt.Sprintf(`Nouvelle demande de contact

De: %s %s
Email: %s
Téléphone: %s
Sujet: %s

Message:
%s

Demande reçue le %s`,
		r.Prenom, r.Nom, r.Email, r.Telephone, r.Sujet, r.Message, frDate(r.CreatedAt))

	htmlBody := fmt.Sprintf(`<h2>Nouvelle demande de contact</h2>
<p><strong>De:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Téléphone:</strong> %s</p>
<p><strong>Sujet:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><small>Demande reçue le %s</small></p>`,
		esc(r.Prenom), esc(r.Nom), esc(r.Email), esc(r.Telephone), esc(r.Sujet), esc(r.Message), frDate(r.CreatedAt))

	return Message{
		To:       []string{tp.Garage.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ContactConfirmation is the email sent back to the requester after a
// contact request is stored.
func (tp Templates) ContactConfirmation(r *domain.ContactRequest) Message {
	subject := fmt.Sprintf("Confirmation de votre demande - %s", tp.Garage.Name)

	textBody := fmt.Sprintf(`Merci pour votre demande

Bonjour %s,

Nous avons bien reçu votre demande concernant: %s

Nous vous répondrons dans les plus brefs délais, généralement sous 24h.

En cas d'urgence, n'hésitez pas à nous appeler au %s

Cordialement,
L'équipe du %s
%s`,
		r.Prenom, r.Sujet, tp.Garage.Phone, tp.Garage.Name, tp.Garage.Address)

	htmlBody := fmt.Sprintf(`<h2>Merci pour votre demande</h2>
<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre demande concernant: <strong>%s</strong></p>
<p>Nous vous répondrons dans les plus brefs délais, généralement sous 24h.</p>
<p>En cas d'urgence, n'hésitez pas à nous appeler au <strong>%s</strong></p>
<hr>
<p>Cordialement,<br>L'équipe du %s</p>
<p><small>%s</small></p>`,
		esc(r.Prenom), esc(r.Sujet), esc(tp.Garage.Phone), esc(tp.Garage.Name), esc(tp.Garage.Address))

	return Message{
		To:       []string{r.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AppointmentOwnerNotice is the email sent to the garage address when an
// appointment request comes in. The optional message block is omitted when
// the requester left it empty.
func (tp Templates) AppointmentOwnerNotice(r *domain.AppointmentRequest) Message {
	subject := fmt.Sprintf("Nouvelle demande de rendez-vous - %s", r.Service)

	var textMsg, htmlMsg string
	if strings.TrimSpace(r.Message) != "" {
		textMsg = fmt.Sprintf("\nMessage:\n%s\n", r.Message)
		htmlMsg = fmt.Sprintf("<p><strong>Message:</strong></p><p>%s</p>", esc(r.Message))
	}

	textBody := fmt.Sprintf(`Nouvelle demande de rendez-vous

Client: %s %s
Email: %s
Téléphone: %s
Service demandé: %s
%s
Demande reçue le %s`,
		r.Prenom, r.Nom, r.Email, r.Telephone, r.Service, textMsg, frDate(r.CreatedAt))

	htmlBody := fmt.Sprintf(`<h2>Nouvelle demande de rendez-vous</h2>
<p><strong>Client:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Téléphone:</strong> %s</p>
<p><strong>Service demandé:</strong> %s</p>
%s
<hr>
<p><small>Demande reçue le %s</small></p>`,
		esc(r.Prenom), esc(r.Nom), esc(r.Email), esc(r.Telephone), esc(r.Service), htmlMsg, frDate(r.CreatedAt))

	return Message{
		To:       []string{tp.Garage.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AppointmentConfirmation is the email sent back to the requester after an
// appointment request is stored.
func (tp Templates) AppointmentConfirmation(r *domain.AppointmentRequest) Message {
	subject := fmt.Sprintf("Confirmation de votre demande de rendez-vous - %s", tp.Garage.Name)

	textBody := fmt.Sprintf(`Demande de rendez-vous reçue

Bonjour %s,

Nous avons bien reçu votre demande de rendez-vous pour: %s

Nous vous contacterons rapidement au %s pour convenir d'un créneau qui vous convient.

En cas d'urgence, n'hésitez pas à nous appeler directement au %s

Cordialement,
L'équipe du %s
%s`,
		r.Prenom, r.Service, r.Telephone, tp.Garage.Phone, tp.Garage.Name, tp.Garage.Address)

	htmlBody := fmt.Sprintf(`<h2>Demande de rendez-vous reçue</h2>
<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre demande de rendez-vous pour: <strong>%s</strong></p>
<p>Nous vous contacterons rapidement au <strong>%s</strong> pour convenir d'un créneau qui vous convient.</p>
<p>En cas d'urgence, n'hésitez pas à nous appeler directement au <strong>%s</strong></p>
<hr>
<p>Cordialement,<br>L'équipe du %s</p>
<p><small>%s</small></p>`,
		esc(r.Prenom), esc(r.Service), esc(r.Telephone), esc(tp.Garage.Phone), esc(tp.Garage.Name), esc(tp.Garage.Address))

	return Message{
		To:       []string{r.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
