package bistro

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)

	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	if err := s.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestSaveAndListInquiries(t *testing.T) {
	s := setupTestStore(t)

	older := Inquiry{
		Name:      "Ana Ortiz",
		Email:     "ana@example.com",
		Plan:      "Growth Plan",
		Message:   "We need more covers on weeknights.",
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := Inquiry{
		Name:       "Bo Chen",
		Email:      "bo@example.com",
		Restaurant: "Lotus Garden",
		Message:    "Delivery margins are thin.",
		CreatedAt:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	if err := s.SaveInquiry(&older); err != nil {
		t.Fatalf("SaveInquiry failed: %v", err)
	}
	if err := s.SaveInquiry(&newer); err != nil {
		t.Fatalf("SaveInquiry failed: %v", err)
	}
	if older.ID == 0 || newer.ID == 0 {
		t.Fatalf("expected ids to be assigned, got %d and %d", older.ID, newer.ID)
	}

	list, err := s.ListInquiries()
	if err != nil {
		t.Fatalf("ListInquiries failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 inquiries, got %d", len(list))
	}
	if list[0].Name != "Bo Chen" {
		t.Errorf("expected newest first, got %q", list[0].Name)
	}
	if list[0].Restaurant != "Lotus Garden" {
		t.Errorf("restaurant mismatch: %q", list[0].Restaurant)
	}
	if !list[1].CreatedAt.Equal(older.CreatedAt) {
		t.Errorf("created_at mismatch: got %v, want %v", list[1].CreatedAt, older.CreatedAt)
	}
	if list[1].Plan != "Growth Plan" {
		t.Errorf("plan mismatch: %q", list[1].Plan)
	}
}

func TestSaveInquiryDefaultsCreatedAt(t *testing.T) {
	s := setupTestStore(t)

	in := Inquiry{Name: "Cy", Email: "cy@example.com", Message: "Hello"}
	before := time.Now().Add(-time.Second)
	if err := s.SaveInquiry(&in); err != nil {
		t.Fatalf("SaveInquiry failed: %v", err)
	}
	got, err := s.GetInquiry(in.ID)
	if err != nil {
		t.Fatalf("GetInquiry failed: %v", err)
	}
	if got.CreatedAt.Before(before) {
		t.Errorf("expected created_at to be set to now, got %v", got.CreatedAt)
	}
}

func TestMarkHandled(t *testing.T) {
	s := setupTestStore(t)

	in := Inquiry{Name: "Di", Email: "di@example.com", Message: "Hi"}
	if err := s.SaveInquiry(&in); err != nil {
		t.Fatalf("SaveInquiry failed: %v", err)
	}
	open, err := s.CountOpen()
	if err != nil || open != 1 {
		t.Fatalf("expected 1 open inquiry, got %d (%v)", open, err)
	}

	if err := s.MarkHandled(in.ID); err != nil {
		t.Fatalf("MarkHandled failed: %v", err)
	}
	got, err := s.GetInquiry(in.ID)
	if err != nil {
		t.Fatalf("GetInquiry failed: %v", err)
	}
	if !got.Handled {
		t.Error("expected inquiry to be handled")
	}
	if open, _ := s.CountOpen(); open != 0 {
		t.Errorf("expected 0 open inquiries, got %d", open)
	}
}

func TestDeleteInquiry(t *testing.T) {
	s := setupTestStore(t)

	in := Inquiry{Name: "Ed", Email: "ed@example.com", Message: "Bye"}
	if err := s.SaveInquiry(&in); err != nil {
		t.Fatalf("SaveInquiry failed: %v", err)
	}
	if err := s.DeleteInquiry(in.ID); err != nil {
		t.Fatalf("DeleteInquiry failed: %v", err)
	}
	if _, err := s.GetInquiry(in.ID); !IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestMissingInquiryIsNotFound(t *testing.T) {
	s := setupTestStore(t)

	if err := s.MarkHandled(999); !IsNotFound(err) {
		t.Errorf("MarkHandled: expected not found, got %v", err)
	}
	if err := s.DeleteInquiry(999); !IsNotFound(err) {
		t.Errorf("DeleteInquiry: expected not found, got %v", err)
	}
}
