package mail

import (
	"strings"
	"testing"
	"time"

	"github.com/garage-routhier/go-garage-backend/internal/config"
	"github.com/garage-routhier/go-garage-backend/internal/domain"
)

func testTemplates() Templates {
	return Templates{Garage: config.GarageConfig{
		Name:    "Garage Routhier",
		Email:   "contact@garage-routhier.ch",
		Phone:   "+41 22 369 17 57",
		Address: "Rte de Genolier 21, 1271 Givrins, Suisse",
	}}
}

func TestContactOwnerNotice_RecipientsAndContent(t *testing.T) {
	tp := testTemplates()
	r := &domain.ContactRequest{
		Nom: "Dupont", Prenom: "Marie", Email: "marie@example.com",
		Telephone: "0612345678", Sujet: "Demande de devis", Message: "Bruit au freinage",
		CreatedAt: time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC),
	}

	m := tp.ContactOwnerNotice(r)
	if len(m.To) != 1 || m.To[0] != "contact@garage-routhier.ch" {
		t.Fatalf("owner notice must go to the garage address, got %v", m.To)
	}
	if !strings.Contains(m.Subject, "Demande de devis") {
		t.Fatalf("subject should carry the sujet: %q", m.Subject)
	}
	for _, want := range []string{"Marie Dupont", "marie@example.com", "0612345678", "Bruit au freinage", "04.03.2025"} {
		if !strings.Contains(m.TextBody, want) {
			t.Fatalf("text body missing %q:\n%s", want, m.TextBody)
		}
	}
	if !strings.Contains(m.HTMLBody, "<h2>Nouvelle demande de contact</h2>") {
		t.Fatalf("html body missing heading:\n%s", m.HTMLBody)
	}
}

func TestContactOwnerNotice_EscapesHTML(t *testing.T) {
	tp := testTemplates()
	r := &domain.ContactRequest{
		Nom: "Dupont", Prenom: "Marie", Email: "m@x",
		Sujet: "devis", Message: `<script>alert("x")</script>`,
	}
	m := tp.ContactOwnerNotice(r)
	if strings.Contains(m.HTMLBody, "<script>") {
		t.Fatalf("html body must escape user content:\n%s", m.HTMLBody)
	}
}

func TestContactConfirmation_GoesToRequester(t *testing.T) {
	tp := testTemplates()
	r := &domain.ContactRequest{Prenom: "Marie", Email: "marie@example.com", Sujet: "Urgence"}

	m := tp.ContactConfirmation(r)
	if len(m.To) != 1 || m.To[0] != "marie@example.com" {
		t.Fatalf("confirmation must go to the requester, got %v", m.To)
	}
	for _, want := range []string{"Bonjour Marie", "Urgence", "+41 22 369 17 57", "Garage Routhier"} {
		if !strings.Contains(m.TextBody, want) {
			t.Fatalf("text body missing %q:\n%s", want, m.TextBody)
		}
	}
}

func TestAppointmentOwnerNotice_OptionalMessageBlock(t *testing.T) {
	tp := testTemplates()

	withMsg := &domain.AppointmentRequest{
		Nom: "Dupont", Prenom: "Marie", Email: "m@x", Telephone: "06",
		Service: "Entretien Périodique", Message: "disponible le matin",
	}
	m := tp.AppointmentOwnerNotice(withMsg)
	if !strings.Contains(m.TextBody, "disponible le matin") || !strings.Contains(m.HTMLBody, "disponible le matin") {
		t.Fatalf("message block missing when message present")
	}

	noMsg := &domain.AppointmentRequest{
		Nom: "Dupont", Prenom: "Marie", Email: "m@x", Telephone: "06",
		Service: "Entretien Périodique", Message: "   ",
	}
	m = tp.AppointmentOwnerNotice(noMsg)
	if strings.Contains(m.TextBody, "Message:") || strings.Contains(m.HTMLBody, "Message:") {
		t.Fatalf("message block should be omitted for blank message:\n%s", m.TextBody)
	}
	if !strings.Contains(m.Subject, "Entretien Périodique") {
		t.Fatalf("subject should carry the service: %q", m.Subject)
	}
}

func TestAppointmentConfirmation_ContentAndRecipient(t *testing.T) {
	tp := testTemplates()
	r := &domain.AppointmentRequest{
		Prenom: "Marie", Email: "marie@example.com", Telephone: "0612345678",
		Service: "Freinage & Sécurité",
	}
	m := tp.AppointmentConfirmation(r)
	if len(m.To) != 1 || m.To[0] != "marie@example.com" {
		t.Fatalf("confirmation recipient: %v", m.To)
	}
	for _, want := range []string{"Freinage & Sécurité", "0612345678", "Rte de Genolier 21"} {
		if !strings.Contains(m.TextBody, want) {
			t.Fatalf("text body missing %q", want)
		}
	}
	// HTML body escapes the ampersand in the service name.
	if !strings.Contains(m.HTMLBody, "Freinage &amp; Sécurité") {
		t.Fatalf("html body should escape service name:\n%s", m.HTMLBody)
	}
}
