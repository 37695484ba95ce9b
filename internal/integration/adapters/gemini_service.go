// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/personal-dashboard/backend/internal/application/adapter"
	"github.com/personal-dashboard/backend/internal/domain/entity"
	domainerror "github.com/personal-dashboard/backend/internal/domain/error"
)

// GeminiService implements the adapter.OracleService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// generate runs one prompt against the model and returns the raw text.
// A new client per call keeps the service stateless.
func (s *GeminiService) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", domainerror.NewOracleError(
			domainerror.ErrCodeOracleTransport,
			"failed to create gemini client",
			err,
		)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	if jsonOutput {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domainerror.NewOracleError(
			domainerror.ErrCodeOracleTransport,
			"failed to generate content",
			err,
		)
	}

	text := extractText(resp)
	if text == "" {
		return "", domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"empty response from gemini",
			domainerror.ErrOracleMalformedPayload,
		)
	}
	return text, nil
}

// FinancialInsights produces a markdown commentary over the transactions.
func (s *GeminiService) FinancialInsights(ctx context.Context, transactions []entity.Transaction) (string, error) {
	data, err := json.Marshal(transactions)
	if err != nil {
		return "", fmt.Errorf("failed to serialize transactions: %w", err)
	}

	prompt := fmt.Sprintf(`Analise os seguintes dados de transações financeiras e forneça insights acionáveis em português.
Foco em:
1. Principais categorias de despesas.
2. Comparação entre receitas e despesas.
3. Sugestões para economia ou otimização de gastos.
4. Resumo geral da saúde financeira no período.

Formate a resposta em markdown.

Dados:
%s`, data)

	return s.generate(ctx, prompt, false)
}

// BettingInsights produces a markdown performance analysis over the bets.
func (s *GeminiService) BettingInsights(ctx context.Context, bets []entity.Bet) (string, error) {
	data, err := json.Marshal(bets)
	if err != nil {
		return "", fmt.Errorf("failed to serialize bets: %w", err)
	}

	prompt := fmt.Sprintf(`Analise os seguintes dados de apostas esportivas e forneça uma análise de desempenho em português.
Foco em:
1. Cálculo do ROI (Return on Investment).
2. Análise de lucros e perdas.
3. Identificação de padrões (e.g., odds que mais dão retorno, tipos de aposta mais lucrativos).
4. Sugestões para melhorar a estratégia de apostas.

Formate a resposta em markdown.

Dados:
%s`, data)

	return s.generate(ctx, prompt, false)
}

// CheckBetResult asks for a won/lost/pending classification of the bet.
func (s *GeminiService) CheckBetResult(ctx context.Context, bet entity.Bet) (entity.BetResult, error) {
	prompt := fmt.Sprintf(`Com base nos resultados oficiais de eventos esportivos, determine o resultado da seguinte aposta:
- Descrição da Aposta: "%s"
- Data do Evento: %s

Qual foi o resultado da aposta? Responda APENAS com "won" se a aposta foi ganha, ou "lost" se a aposta foi perdida. Se não for possível determinar, responda "pending".`,
		bet.Description, bet.Date.Format("2006-01-02"))

	text, err := s.generate(ctx, prompt, false)
	if err != nil {
		return "", err
	}
	return parseBetResult(text), nil
}

// UpcomingMatches lists the day's main football fixtures.
func (s *GeminiService) UpcomingMatches(ctx context.Context, date string) ([]adapter.UpcomingMatch, error) {
	prompt := fmt.Sprintf(`Liste os principais jogos de futebol do dia "%s".
Responda APENAS com um objeto JSON. O JSON deve ser um array de objetos, onde cada objeto tem as chaves "match" (ex: "Time A vs Time B") e "date" (que deve ser "%s").
Se não houver jogos importantes, retorne um array vazio [].
Não inclua nenhuma formatação ou texto adicional antes ou depois do JSON.`, date, date)

	text, err := s.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}
	return parseMatchList(text)
}

// GameAnalysis produces a structured pre-match analysis for the fixture.
func (s *GeminiService) GameAnalysis(ctx context.Context, match string) (*adapter.GameAnalysisPayload, error) {
	prompt := fmt.Sprintf(`Gere uma pré-análise detalhada para o jogo de futebol "%s".
Responda APENAS com um objeto JSON com as seguintes chaves:
- "analysis": um parágrafo com a análise do momento atual das equipes e ponto chave.
- "potentialEntries": uma sugestão curta de mercado para ficar de olho.
- "referee": o nome do árbitro da partida (retorne "Não encontrado" se não achar).
- "cardStats": a média de cartões do árbitro ou dos times (ex: "Média de 5.2 cartões").
- "cornerScenario": um breve texto sobre o cenário esperado para escanteios.
- "teamCornerAverages": as médias de escanteios dos times (ex: "Casa: 6.5 / Fora: 4.8").
Não inclua nenhuma formatação ou texto adicional antes ou depois do JSON.`, match)

	text, err := s.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}
	return parseAnalysisPayload(text)
}

// ParseEvent extracts a calendar event from free text, anchored on today.
func (s *GeminiService) ParseEvent(ctx context.Context, text string) (*adapter.ParsedEvent, error) {
	today := time.Now().Format("02/01/2006")
	prompt := fmt.Sprintf(`Extraia os detalhes do evento do seguinte texto: "%s".
Considere que a data de hoje é %s.
Interprete datas relativas como "amanhã", "próxima sexta-feira", etc.
Retorne APENAS um objeto JSON com as chaves "title" (o título do evento), "date" (a data do evento no formato AAAA-MM-DD) e "time" (a hora do evento no formato HH:MM, 24h).`,
		text, today)

	answer, err := s.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}
	return parseParsedEvent(answer)
}

// SalesScript writes a short persuasive pitch for the product.
func (s *GeminiService) SalesScript(ctx context.Context, product entity.Product) (string, error) {
	prompt := fmt.Sprintf(`Crie um roteiro de vendas (pitch de vendas) curto e persuasivo em português para o seguinte produto:
- Nome do Produto: %s
- Descrição: %s
- Preço: R$ %s

O roteiro deve:
1. Começar com uma saudação e uma pergunta de engajamento.
2. Apresentar o produto e seu principal benefício.
3. Criar um senso de urgência ou valor.
4. Terminar com uma chamada para ação clara (call to action).

Formate a resposta em markdown, com títulos para cada seção do script.`,
		product.Name, product.Description, product.Price.StringFixed(2))

	return s.generate(ctx, prompt, false)
}

// extractText pulls the first text part out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// stripCodeFence removes markdown code fences the model sometimes wraps
// JSON answers in.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// parseBetResult maps the raw answer onto the result enum. Anything outside
// won/lost is treated as pending.
func parseBetResult(text string) entity.BetResult {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "won":
		return entity.BetResultWon
	case "lost":
		return entity.BetResultLost
	}
	return entity.BetResultPending
}

// parseMatchList decodes the JSON array of fixtures.
func parseMatchList(text string) ([]adapter.UpcomingMatch, error) {
	var matches []adapter.UpcomingMatch
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &matches); err != nil {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"match list is not a JSON array",
			err,
		)
	}
	return matches, nil
}

// parseAnalysisPayload decodes the analysis object; the analysis field is
// the only mandatory one.
func parseAnalysisPayload(text string) (*adapter.GameAnalysisPayload, error) {
	var payload adapter.GameAnalysisPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"analysis is not a JSON object",
			err,
		)
	}
	if payload.Analysis == "" {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"analysis object is missing the analysis field",
			domainerror.ErrOracleMalformedPayload,
		)
	}
	return &payload, nil
}

// parseParsedEvent decodes the extracted event object.
func parseParsedEvent(text string) (*adapter.ParsedEvent, error) {
	var parsed adapter.ParsedEvent
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err != nil {
		return nil, domainerror.NewOracleError(
			domainerror.ErrCodeOracleMalformed,
			"event extraction is not a JSON object",
			err,
		)
	}
	return &parsed, nil
}

// Ensure implementation satisfies the interface.
var _ adapter.OracleService = (*GeminiService)(nil)
