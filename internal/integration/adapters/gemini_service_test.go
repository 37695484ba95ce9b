package adapters

import (
	"errors"
	"testing"

	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
)

func TestParseBetResult(t *testing.T) {
	cases := []struct {
		name string
		text string
		want entity.BetResult
	}{
		{"plain won", "won", entity.BetResultWon},
		{"won with whitespace", "  Won \n", entity.BetResultWon},
		{"plain lost", "lost", entity.BetResultLost},
		{"explicit pending", "pending", entity.BetResultPending},
		{"chatty answer", "A aposta foi ganha", entity.BetResultPending},
		{"empty", "", entity.BetResultPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseBetResult(tc.text); got != tc.want {
				t.Errorf("parseBetResult(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"bare json", `[{"match":"A vs B"}]`, `[{"match":"A vs B"}]`},
		{"json fence", "```json\n[1,2]\n```", "[1,2]"},
		{"plain fence", "```\n{}\n```", "{}"},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripCodeFence(tc.text); got != tc.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseMatchList(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		matches, err := parseMatchList("```json\n[{\"match\":\"Flamengo vs Palmeiras\",\"date\":\"2024-03-10\"}]\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].Match != "Flamengo vs Palmeiras" || matches[0].Date != "2024-03-10" {
			t.Errorf("unexpected match: %+v", matches[0])
		}
	})

	t.Run("empty array", func(t *testing.T) {
		matches, err := parseMatchList("[]")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("expected no matches, got %d", len(matches))
		}
	})

	t.Run("prose instead of json", func(t *testing.T) {
		_, err := parseMatchList("Não há jogos importantes hoje.")
		var oracleErr *domainerror.OracleError
		if !errors.As(err, &oracleErr) {
			t.Fatalf("expected an OracleError, got %v", err)
		}
		if oracleErr.Code != domainerror.ErrCodeOracleMalformed {
			t.Errorf("expected malformed code, got %s", oracleErr.Code)
		}
	})
}

func TestParseAnalysisPayload(t *testing.T) {
	t.Run("full object", func(t *testing.T) {
		payload, err := parseAnalysisPayload(`{
			"analysis": "jogo equilibrado",
			"potentialEntries": "mais de 9 escanteios",
			"referee": "Anderson Daronco",
			"cardStats": "Média de 5.2 cartões",
			"cornerScenario": "pressão do mandante",
			"teamCornerAverages": "Casa: 6.5 / Fora: 4.8"
		}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payload.Analysis != "jogo equilibrado" || payload.Referee != "Anderson Daronco" {
			t.Errorf("unexpected payload: %+v", payload)
		}
	})

	t.Run("missing analysis field", func(t *testing.T) {
		_, err := parseAnalysisPayload(`{"referee":"Anderson Daronco"}`)
		if !errors.Is(err, domainerror.ErrOracleMalformedPayload) {
			t.Errorf("expected ErrOracleMalformedPayload, got %v", err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseAnalysisPayload("análise indisponível")
		var oracleErr *domainerror.OracleError
		if !errors.As(err, &oracleErr) {
			t.Errorf("expected an OracleError, got %v", err)
		}
	})
}

func TestParseParsedEvent(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		parsed, err := parseParsedEvent(`{"title":"Dentista","date":"2024-03-15","time":"14:30"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.Title != "Dentista" || parsed.Date != "2024-03-15" || parsed.Time != "14:30" {
			t.Errorf("unexpected event: %+v", parsed)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseParsedEvent("sem evento")
		var oracleErr *domainerror.OracleError
		if !errors.As(err, &oracleErr) {
			t.Errorf("expected an OracleError, got %v", err)
		}
	})
}

func TestIsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("expected service without key to be unavailable")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("expected service with key to be available")
	}
}
