package handlers

import (
	"net/http"
	"testing"

	"seguros_xpto/internal/adapter/http/handlers/mocks"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase"

	"go.uber.org/mock/gomock"
)

var policyRef = entities.EntityRef{Kind: entities.EntityKindPolicy, ID: "pol-1"}

func TestDocumentHandler_UploadPolicyDocument(t *testing.T) {
	tests := []struct {
		name       string
		slot       string
		err        error
		wantStatus int
	}{
		{name: "slot not allowed for type", slot: "green-card.pdf", err: usecase.ErrSlotNotAllowed, wantStatus: http.StatusBadRequest},
		{name: "unknown slot", slot: "other.pdf", err: usecase.ErrUnknownSlot, wantStatus: http.StatusNotFound},
		{name: "not a pdf", slot: "receipt.pdf", err: usecase.ErrUnsupportedContentType, wantStatus: http.StatusUnsupportedMediaType},
		{name: "empty", slot: "receipt.pdf", err: usecase.ErrEmptyDocument, wantStatus: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAttachmentUseCase(ctrl)
			r := newRouter(t, adminPrincipal)
			r.PUT("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).UploadPolicyDocument)

			uc.EXPECT().Upload(gomock.Any(), adminPrincipal, policyRef, entities.DocumentSlot(tc.slot), gomock.Any()).
				Return(usecase.UploadResult{}, tc.err)

			w := doUpload(r, http.MethodPut, "/v1/policies/pol-1/documents/"+tc.slot, "doc.pdf", "application/pdf", pdfBytes)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}

	rejected := []struct {
		name       string
		principal  entities.Principal
		wantStatus int
	}{
		{name: "customer", principal: customerPrincipal, wantStatus: http.StatusForbidden},
		{name: "anonymous", principal: entities.Principal{}, wantStatus: http.StatusUnauthorized},
	}
	for _, tc := range rejected {
		t.Run(tc.name+" is rejected before the body is read", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAttachmentUseCase(ctrl)
			r := newRouter(t, tc.principal)
			r.PUT("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).UploadPolicyDocument)

			w := doJSON(r, http.MethodPut, "/v1/policies/pol-1/documents/policy.pdf", `{}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}

	t.Run("uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, adminPrincipal)
		r.PUT("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).UploadPolicyDocument)

		uc.EXPECT().Upload(gomock.Any(), adminPrincipal, policyRef, entities.SlotPolicy, gomock.Any()).
			Return(usecase.UploadResult{Ref: policyRef, Slot: entities.SlotPolicy, PolicyStatus: entities.PolicyStatusEmVigor}, nil)

		w := doUpload(r, http.MethodPut, "/v1/policies/pol-1/documents/policy.pdf", "apolice.pdf", "application/pdf", pdfBytes)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["policy_status"] != "em_vigor" || body["slot"] != "policy.pdf" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_Delete(t *testing.T) {
	t.Run("policy slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, adminPrincipal)
		r.DELETE("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).DeletePolicyDocument)

		uc.EXPECT().Delete(gomock.Any(), adminPrincipal, policyRef, entities.SlotReceipt).Return(nil)

		if w := doJSON(r, http.MethodDelete, "/v1/policies/pol-1/documents/receipt.pdf", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("quote always targets the quote slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, adminPrincipal)
		r.DELETE("/v1/simulations/:id/documents/quote.pdf", NewDocumentHandler(uc).DeleteQuoteDocument)

		ref := entities.EntityRef{Kind: entities.EntityKindSimulation, ID: "sim-1"}
		uc.EXPECT().Delete(gomock.Any(), adminPrincipal, ref, entities.SlotQuote).Return(usecase.ErrDocumentNotFound)

		if w := doJSON(r, http.MethodDelete, "/v1/simulations/sim-1/documents/quote.pdf", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_Download(t *testing.T) {
	const signed = "https://bucket.s3.amazonaws.com/policies/pol-1/policy.pdf?X-Amz-Signature=abc"

	t.Run("redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, customerPrincipal)
		r.GET("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).DownloadPolicyDocument)

		uc.EXPECT().Locate(gomock.Any(), customerPrincipal, policyRef, entities.SlotPolicy).Return(signed, nil)

		w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/documents/policy.pdf", "")
		if w.Code != http.StatusTemporaryRedirect {
			t.Fatalf("expected 307, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != signed {
			t.Fatalf("unexpected location %q", loc)
		}
	})

	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, customerPrincipal)
		r.GET("/v1/simulations/:id/documents/quote.pdf", NewDocumentHandler(uc).DownloadQuoteDocument)

		ref := entities.EntityRef{Kind: entities.EntityKindSimulation, ID: "sim-1"}
		uc.EXPECT().Locate(gomock.Any(), customerPrincipal, ref, entities.SlotQuote).Return(signed, nil)

		w := doJSON(r, http.MethodGet, "/v1/simulations/sim-1/documents/quote.pdf?format=json", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["url"] != signed {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := newRouter(t, customerPrincipal)
		r.GET("/v1/policies/:id/documents/:slot", NewDocumentHandler(uc).DownloadPolicyDocument)

		uc.EXPECT().Locate(gomock.Any(), customerPrincipal, policyRef, entities.SlotGreenCard).Return("", usecase.ErrDocumentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/policies/pol-1/documents/green-card.pdf", "")
		if w.Code != http.StatusNotFound || errorCode(t, w) != "DOCUMENT_NOT_FOUND" {
			t.Fatalf("expected 404 DOCUMENT_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})
}
