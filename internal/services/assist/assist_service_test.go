package assist

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/generate" {
			t.Errorf("path = %s, want /v1/generate", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"generatedText":"polished text"}`))
	}))
	defer srv.Close()

	svc := NewAssistService(srv.URL, "test-key")
	out, err := svc.Generate("raw text")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "polished text" {
		t.Errorf("out = %q, want %q", out, "polished text")
	}
}

func TestGenerate_NonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewAssistService(srv.URL, "test-key")
	if _, err := svc.Generate("raw text"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generatedText":""}`))
	}))
	defer srv.Close()

	svc := NewAssistService(srv.URL, "test-key")
	if _, err := svc.Generate("raw text"); err == nil {
		t.Error("expected error for empty generated text")
	}
}

func TestSupportPrompt_CarriesKnowledgeAndDeferral(t *testing.T) {
	p := SupportPrompt("How do fees work?", "fees: there are none", "help@campusgig.app")
	if !strings.Contains(p, "fees: there are none") {
		t.Error("prompt should embed the knowledge base")
	}
	if !strings.Contains(p, "help@campusgig.app") {
		t.Error("prompt should name the support contact")
	}
	if !strings.Contains(p, "How do fees work?") {
		t.Error("prompt should carry the question")
	}
}
