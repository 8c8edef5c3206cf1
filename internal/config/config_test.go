package config_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/quizchat/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DIFY_API_KEY", "DIFY_BASE_URL", "HOST", "PORT", "QUIZ_STORE_MAX_ENTRIES"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.DifyBaseURL != "https://api.dify.ai/v1" {
		t.Errorf("base URL padrão incorreta: %q", cfg.DifyBaseURL)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("host padrão incorreto: %q", cfg.Host)
	}
	if cfg.Port != "8000" {
		t.Errorf("porta padrão incorreta: %q", cfg.Port)
	}
	if cfg.DifyAPIKey != "" {
		t.Errorf("API key deveria ficar vazia quando não definida: %q", cfg.DifyAPIKey)
	}
	if cfg.MaxStoredAnswers != 0 {
		t.Errorf("limite do store deveria ser 0 (padrão interno) quando não definido: %d", cfg.MaxStoredAnswers)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DIFY_API_KEY", "chave")
	t.Setenv("DIFY_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("QUIZ_STORE_MAX_ENTRIES", "50")

	cfg := config.Load()

	if cfg.DifyAPIKey != "chave" || cfg.DifyBaseURL != "http://localhost:9999/v1" {
		t.Errorf("configuração do Dify não foi lida do ambiente: %+v", cfg)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != "8080" {
		t.Errorf("bind não foi lido do ambiente: %+v", cfg)
	}
	if cfg.MaxStoredAnswers != 50 {
		t.Errorf("limite do store esperado 50, obteve %d", cfg.MaxStoredAnswers)
	}
}

func TestJSONWriters(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.JSON(rec, http.StatusCreated, map[string]int{"total": 3})

		if rec.Code != http.StatusCreated {
			t.Errorf("status esperado 201, obteve %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type incorreto: %q", ct)
		}

		var body map[string]int
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if body["total"] != 3 {
			t.Errorf("corpo incorreto: %v", body)
		}
	})

	t.Run("Error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		config.Error(rec, http.StatusNotFound, "questão não existe")

		if rec.Code != http.StatusNotFound {
			t.Errorf("status esperado 404, obteve %d", rec.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("corpo não é JSON: %v", err)
		}
		if body["detail"] != "questão não existe" {
			t.Errorf("detail incorreto: %q", body["detail"])
		}
	})
}
