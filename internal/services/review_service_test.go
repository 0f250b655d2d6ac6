package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garage-routhier/go-garage-backend/internal/domain"
	"github.com/garage-routhier/go-garage-backend/internal/repo"
)

func seedContacts(t *testing.T, svc *SubmissionService, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		res, err := svc.SubmitContact(context.Background(), ContactInput{
			Nom: "N", Prenom: "P", Email: "e@x", Sujet: "s",
		})
		if err != nil {
			t.Fatalf("seed contact #%d: %v", i, err)
		}
		ids = append(ids, res.ID)
		time.Sleep(2 * time.Millisecond) // distinct created_at for ordering
	}
	return ids
}

func TestReviewService_ListContacts_NewestFirst(t *testing.T) {
	db := newTestDB(t, true)
	sub := newSubmissionService(db, &recordingMailer{})
	ids := seedContacts(t, sub, 3)

	svc := NewReviewService(db, storeShim{})
	got, err := svc.ListContactRequests(context.Background())
	if err != nil {
		t.Fatalf("ListContactRequests: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	if got[0].ID != ids[2] || got[2].ID != ids[0] {
		t.Fatalf("expected newest-first ordering, got %v then %v", got[0].ID, got[2].ID)
	}
}

func TestReviewService_ListAppointments_Empty(t *testing.T) {
	db := newTestDB(t, true)
	svc := NewReviewService(db, storeShim{})

	got, err := svc.ListAppointmentRequests(context.Background())
	if err != nil {
		t.Fatalf("ListAppointmentRequests: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReviewService_UpdateContactStatus(t *testing.T) {
	db := newTestDB(t, true)
	sub := newSubmissionService(db, &recordingMailer{})
	ids := seedContacts(t, sub, 1)

	svc := NewReviewService(db, storeShim{})
	updated, err := svc.UpdateContactStatus(context.Background(), ids[0], domain.ContactStatusResolved, "rappelé le client")
	if err != nil {
		t.Fatalf("UpdateContactStatus: %v", err)
	}
	if updated.Status != domain.ContactStatusResolved || updated.Notes != "rappelé le client" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// Empty notes clear the previous value.
	updated, err = svc.UpdateContactStatus(context.Background(), ids[0], domain.ContactStatusInProgress, "")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.Status != domain.ContactStatusInProgress || updated.Notes != "" {
		t.Fatalf("notes should be cleared: %+v", updated)
	}
}

func TestReviewService_UpdateContactStatus_NotFound(t *testing.T) {
	db := newTestDB(t, true)
	svc := NewReviewService(db, storeShim{})

	_, err := svc.UpdateContactStatus(context.Background(), "missing-id", domain.ContactStatusResolved, "")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestReviewService_UpdateAppointmentStatus(t *testing.T) {
	db := newTestDB(t, true)
	sub := newSubmissionService(db, &recordingMailer{})
	res, err := sub.SubmitAppointment(context.Background(), AppointmentInput{
		Nom: "N", Prenom: "P", Email: "e@x", Service: "Diagnostic Électronique",
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	svc := NewReviewService(db, storeShim{})
	updated, err := svc.UpdateAppointmentStatus(context.Background(), res.ID, domain.AppointmentStatusConfirmed, "lundi 9h")
	if err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}
	if updated.Status != domain.AppointmentStatusConfirmed || updated.Notes != "lundi 9h" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	_, err = svc.UpdateAppointmentStatus(context.Background(), "nope", domain.AppointmentStatusCancelled, "")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestReviewService_PageLimitDefault(t *testing.T) {
	db := newTestDB(t, true)
	svc := NewReviewService(db, storeShim{})
	if svc.PageLimit != repo.DefaultListLimit {
		t.Fatalf("expected default page limit %d, got %d", repo.DefaultListLimit, svc.PageLimit)
	}
}
