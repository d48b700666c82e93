package usecase

import (
	"context"
	"errors"
	"testing"

	"seguros_xpto/internal/domain/entities"
	mock_interfaces "seguros_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func autoInput(plate string) SimulationInput {
	return SimulationInput{
		Type: entities.SimulationTypeAuto,
		Payload: map[string]any{
			"name":  "Ana Silva",
			"email": "ana@example.pt",
			"phone": "912345678",
			"plate": plate,
		},
	}
}

func TestSimulationUseCase_CreateOrUpdate_Validation(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISimulationRepository(ctrl)
		uc := NewSimulationUseCase(repo, nil, nil, nil, nil)

		_, err := uc.CreateOrUpdate(context.Background(), entities.Principal{}, SimulationInput{Type: "barco"})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Violations["type"] == "" {
			t.Fatalf("expected type violation, got %v", err)
		}
	})

	t.Run("missing plate and bad phone write nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISimulationRepository(ctrl)
		uc := NewSimulationUseCase(repo, nil, nil, nil, nil)

		in := autoInput("")
		in.Payload["phone"] = "12"
		_, err := uc.CreateOrUpdate(context.Background(), entities.Principal{}, in)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		var verr *ValidationError
		errors.As(err, &verr)
		if verr.Violations["plate"] == "" || verr.Violations["phone"] == "" {
			t.Fatalf("expected plate and phone violations, got %v", verr.Violations)
		}
	})

	t.Run("optional nif must be valid", func(t *testing.T) {
		uc := NewSimulationUseCase(newMemSimulationRepo(), nil, nil, nil, nil)
		in := autoInput("AA-00-BB")
		in.Payload["nif"] = "123456788"
		_, err := uc.CreateOrUpdate(context.Background(), entities.Principal{}, in)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("vida needs a birth date", func(t *testing.T) {
		uc := NewSimulationUseCase(newMemSimulationRepo(), nil, nil, nil, nil)
		_, err := uc.CreateOrUpdate(context.Background(), entities.Principal{}, SimulationInput{
			Type: entities.SimulationTypeVida,
			Payload: map[string]any{
				"name": "Ana Silva", "email": "ana@example.pt", "phone": "912345678", "birth_date": "31/12/1990",
			},
		})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Violations["birth_date"] == "" {
			t.Fatalf("expected birth_date violation, got %v", err)
		}
	})
}

func TestSimulationUseCase_CreateOrUpdate_KeepsOwner(t *testing.T) {
	repo := newMemSimulationRepo()
	uc := NewSimulationUseCase(repo, nil, nil, nil, nil)
	uc.now = fixedClock("2026-03-02T10:00:05Z")
	ctx := context.Background()

	first, err := uc.CreateOrUpdate(ctx, customerPrincipal, autoInput("AA-00-BB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.now = fixedClock("2026-03-02T10:00:30Z")
	anonymous := entities.Principal{}
	if _, err := uc.CreateOrUpdate(ctx, anonymous, autoInput("AA-00-BB")); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored := repo.items[first.ID]
	if stored.OwnerID != "uid-1" || stored.OwnerEmail != "ana@example.pt" {
		t.Fatalf("owner must be kept, got %q/%q", stored.OwnerID, stored.OwnerEmail)
	}
}

func TestSimulationUseCase_CreateOrUpdate_Idempotent(t *testing.T) {
	repo := newMemSimulationRepo()
	feed := &fakeFeed{}
	uc := NewSimulationUseCase(repo, nil, feed, nil, nil)
	ctx := context.Background()

	uc.now = fixedClock("2026-03-02T10:00:05Z")
	first, err := uc.CreateOrUpdate(ctx, customerPrincipal, autoInput("AA-00-BB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc.now = fixedClock("2026-03-02T10:00:40Z")
	second, err := uc.CreateOrUpdate(ctx, customerPrincipal, autoInput("aa00bb"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same minute submissions must share an id: %s vs %s", first.ID, second.ID)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected one record, got %d", len(repo.items))
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at must be preserved on upsert")
	}

	uc.now = fixedClock("2026-03-02T10:01:02Z")
	third, err := uc.CreateOrUpdate(ctx, customerPrincipal, autoInput("AA-00-BB"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third.ID == first.ID {
		t.Fatalf("next minute must create a new record")
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected two records, got %d", len(repo.items))
	}
	if len(feed.published) != 3 {
		t.Fatalf("expected a change event per write, got %d", len(feed.published))
	}
}

func TestSimulationUseCase_CreateOrUpdate_Fields(t *testing.T) {
	t.Run("anonymous lead", func(t *testing.T) {
		uc := NewSimulationUseCase(newMemSimulationRepo(), nil, nil, nil, nil)
		s, err := uc.CreateOrUpdate(context.Background(), entities.Principal{}, autoInput("AA-00-BB"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OwnerID != entities.AnonymousOwner || s.OwnerEmail != "ana@example.pt" {
			t.Fatalf("unexpected owner: %+v", s)
		}
		if s.Status != entities.SimulationStatusSubmitted || s.DisplayStatus() != entities.DisplayStatusProcessing {
			t.Fatalf("unexpected status %s", s.Status)
		}
		if s.Title != "Seguro Automóvel - AA-00-BB" {
			t.Fatalf("unexpected default title %q", s.Title)
		}
	})

	t.Run("repo error is transient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISimulationRepository(ctrl)
		uc := NewSimulationUseCase(repo, nil, nil, nil, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.Simulation{}, errDB)

		_, err := uc.CreateOrUpdate(context.Background(), customerPrincipal, autoInput("AA-00-BB"))
		if !errors.Is(err, ErrTransientIO) || !errors.Is(err, errDB) {
			t.Fatalf("expected transient db error, got %v", err)
		}
	})

	t.Run("upsert keeps a quoted status", func(t *testing.T) {
		repo := newMemSimulationRepo()
		uc := NewSimulationUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedClock("2026-03-02T10:00:05Z")
		s, _ := uc.CreateOrUpdate(context.Background(), customerPrincipal, autoInput("AA-00-BB"))
		repo.SetQuoteDocument(context.Background(), s.ID, "s3://q", entities.SimulationStatusQuoted)

		again, err := uc.CreateOrUpdate(context.Background(), customerPrincipal, autoInput("AA-00-BB"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Status != entities.SimulationStatusQuoted || again.PDFURL != "s3://q" {
			t.Fatalf("resubmission must not reset the quote: %+v", again)
		}
	})
}

func TestSimulationUseCase_GetAndList(t *testing.T) {
	repo := newMemSimulationRepo(
		entities.Simulation{ID: "s1", OwnerID: "uid-1"},
		entities.Simulation{ID: "s2", OwnerID: "uid-2"},
	)
	uc := NewSimulationUseCase(repo, nil, nil, nil, nil)
	ctx := context.Background()

	if _, err := uc.Get(ctx, customerPrincipal, "s1"); err != nil {
		t.Fatalf("owner must read own simulation: %v", err)
	}
	if _, err := uc.Get(ctx, customerPrincipal, "s2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Get(ctx, adminPrincipal, "s2"); err != nil {
		t.Fatalf("admin must read any simulation: %v", err)
	}
	if _, err := uc.Get(ctx, adminPrincipal, "nope"); !errors.Is(err, ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
	if _, err := uc.Get(ctx, adminPrincipal, " "); !errors.Is(err, ErrInvalidSimulationID) {
		t.Fatalf("expected ErrInvalidSimulationID, got %v", err)
	}

	own, err := uc.List(ctx, customerPrincipal, "")
	if err != nil || len(own) != 1 || own[0].ID != "s1" {
		t.Fatalf("unexpected own list %+v err=%v", own, err)
	}
	if _, err := uc.List(ctx, customerPrincipal, "uid-2"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.List(ctx, entities.Principal{}, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	all, err := uc.List(ctx, adminPrincipal, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("admin must list all owners, got %d err=%v", len(all), err)
	}
	filtered, err := uc.List(ctx, adminPrincipal, "uid-2")
	if err != nil || len(filtered) != 1 || filtered[0].ID != "s2" {
		t.Fatalf("unexpected filtered list %+v", filtered)
	}
}

func TestSimulationUseCase_AttachQuoteDocument(t *testing.T) {
	sims := newMemSimulationRepo(entities.Simulation{
		ID: "s1", OwnerID: "uid-1", OwnerEmail: "ana@example.pt", Status: entities.SimulationStatusSubmitted, Title: "Seguro Automóvel",
	})
	notifier := &recordingNotifier{}
	attachments := NewAttachmentUseCase(sims, newMemPolicyRepo(), newMemStorage(), notifier, nil, nil, nil, nil)
	uc := NewSimulationUseCase(sims, attachments, nil, nil, nil)

	res, err := uc.AttachQuoteDocument(context.Background(), adminPrincipal, "s1", pdfDocument())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SimulationStatus != entities.SimulationStatusQuoted {
		t.Fatalf("expected quoted, got %s", res.SimulationStatus)
	}
	stored, _ := sims.GetByID(context.Background(), "s1")
	if stored.PDFURL != "s3://docs/simulations/uid-1/s1/quote.pdf" || stored.DisplayStatus() != entities.DisplayStatusSent {
		t.Fatalf("unexpected stored simulation %+v", stored)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "ana@example.pt" {
		t.Fatalf("expected owner notification, got %v", notifier.sent)
	}

	if _, err := uc.AttachQuoteDocument(context.Background(), customerPrincipal, "s1", pdfDocument()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("customers cannot attach quotes, got %v", err)
	}
}
