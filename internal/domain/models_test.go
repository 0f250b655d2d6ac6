package domain

import "testing"

func TestTableNames(t *testing.T) {
	if got := (ContactRequest{}).TableName(); got != "contact_requests" {
		t.Fatalf("ContactRequest table: %q", got)
	}
	if got := (AppointmentRequest{}).TableName(); got != "appointment_requests" {
		t.Fatalf("AppointmentRequest table: %q", got)
	}
}

func TestValidContactStatus(t *testing.T) {
	for _, s := range ContactStatuses() {
		if !ValidContactStatus(s) {
			t.Fatalf("%q should be a valid contact status", s)
		}
	}
	for _, s := range []string{"", "confirmed", "cancelled", "NEW", "done"} {
		if ValidContactStatus(s) {
			t.Fatalf("%q should not be a valid contact status", s)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range AppointmentStatuses() {
		if !ValidAppointmentStatus(s) {
			t.Fatalf("%q should be a valid appointment status", s)
		}
	}
	for _, s := range []string{"", "in_progress", "resolved", "Confirmed"} {
		if ValidAppointmentStatus(s) {
			t.Fatalf("%q should not be a valid appointment status", s)
		}
	}
}

func TestStatusVocabulariesAreDistinct(t *testing.T) {
	// Both kinds share "new" as the initial status, nothing else.
	shared := 0
	for _, cs := range ContactStatuses() {
		for _, as := range AppointmentStatuses() {
			if cs == as {
				shared++
			}
		}
	}
	if shared != 1 {
		t.Fatalf("expected exactly one shared status (new), got %d", shared)
	}
}

func TestValidService(t *testing.T) {
	if !ValidService("Entretien Périodique") {
		t.Fatalf("catalog service should validate")
	}
	if ValidService("Peinture") {
		t.Fatalf("unknown service should not validate")
	}
	if len(Services) != 4 {
		t.Fatalf("service catalog should hold 4 entries, got %d", len(Services))
	}
}
