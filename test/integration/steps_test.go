//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/personal-dashboard/backend/config"
	"github.com/personal-dashboard/backend/internal/application/usecase/agenda"
	"github.com/personal-dashboard/backend/internal/application/usecase/analysis"
	"github.com/personal-dashboard/backend/internal/application/usecase/betting"
	"github.com/personal-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/personal-dashboard/backend/internal/application/usecase/debt"
	"github.com/personal-dashboard/backend/internal/application/usecase/finance"
	"github.com/personal-dashboard/backend/internal/application/usecase/idea"
	"github.com/personal-dashboard/backend/internal/application/usecase/sales"
	"github.com/personal-dashboard/backend/internal/infra/db"
	"github.com/personal-dashboard/backend/internal/infra/server/router"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/personal-dashboard/backend/internal/integration/persistence"
	"github.com/personal-dashboard/backend/internal/integration/persistence/model"
	"github.com/personal-dashboard/backend/internal/store"
)

// testContext holds the per-scenario state: an app wired over an in-memory
// SQLite database and a scripted oracle.
type testContext struct {
	server   *httptest.Server
	database *db.Database
	oracle   *stubOracle

	response     *http.Response
	responseBody []byte
	lastID       string
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.startServer()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Oracle setup steps
	ctx.Given(`^the oracle is unavailable$`, test.theOracleIsUnavailable)
	ctx.Given(`^the oracle resolves bets as "([^"]*)"$`, test.theOracleResolvesBetsAs)
	ctx.Given(`^the oracle parses events with title "([^"]*)" date "([^"]*)" time "([^"]*)"$`, test.theOracleParsesEventsWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
}

// startServer wires the full application over a fresh in-memory database.
func (t *testContext) startServer() error {
	gin.SetMode(gin.TestMode)

	database, err := db.NewConnection(&config.StorageConfig{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to open test database: %w", err)
	}
	if err := database.AutoMigrate(&model.SlotModel{}); err != nil {
		return fmt.Errorf("failed to migrate test database: %w", err)
	}
	t.database = database

	snapshots := persistence.NewSnapshotRepository(database.DB())
	trackers := store.New(snapshots)
	if err := trackers.LoadAll(context.Background()); err != nil {
		return fmt.Errorf("failed to load tracker data: %w", err)
	}

	t.oracle = newStubOracle()
	t.response = nil
	t.responseBody = nil
	t.lastID = ""

	tracker := betting.NewCheckTracker()

	healthController := controller.NewHealthController(database)
	transactionController := controller.NewTransactionController(
		finance.NewAddTransactionUseCase(trackers.Transactions),
		finance.NewDeleteTransactionUseCase(trackers.Transactions),
		finance.NewListTransactionsUseCase(trackers.Transactions),
		finance.NewGetInsightsUseCase(trackers.Transactions, t.oracle),
	)
	betController := controller.NewBetController(
		betting.NewAddBetUseCase(trackers.Bets),
		betting.NewUpdateBetUseCase(trackers.Bets),
		betting.NewDeleteBetUseCase(trackers.Bets),
		betting.NewListBetsUseCase(trackers.Bets),
		betting.NewSettleBetUseCase(trackers.Bets, t.oracle, tracker),
		betting.NewSettleAllUseCase(trackers.Bets, t.oracle, tracker),
		betting.NewGetInsightsUseCase(trackers.Bets, t.oracle),
	)
	debtController := controller.NewDebtController(
		debt.NewAddDebtUseCase(trackers.Debts),
		debt.NewUpdateDebtUseCase(trackers.Debts),
		debt.NewDeleteDebtUseCase(trackers.Debts),
		debt.NewListDebtsUseCase(trackers.Debts),
	)
	analysisController := controller.NewAnalysisController(
		analysis.NewFetchMatchesUseCase(t.oracle, nil),
		analysis.NewGenerateAnalysesUseCase(trackers.GameAnalyses, t.oracle, nil),
		analysis.NewListAnalysesUseCase(trackers.GameAnalyses),
		analysis.NewDeleteAnalysisUseCase(trackers.GameAnalyses),
		analysis.NewClearAnalysesUseCase(trackers.GameAnalyses),
	)
	agendaController := controller.NewAgendaController(
		agenda.NewScheduleEventUseCase(trackers.Events, t.oracle),
		agenda.NewListEventsUseCase(trackers.Events),
		agenda.NewDeleteEventUseCase(trackers.Events),
	)
	ideaController := controller.NewIdeaController(
		idea.NewAddIdeaUseCase(trackers.Ideas),
		idea.NewDeleteIdeaUseCase(trackers.Ideas),
		idea.NewListIdeasUseCase(trackers.Ideas),
	)
	salesController := controller.NewSalesController(
		sales.NewAddProductUseCase(trackers.Products),
		sales.NewDeleteProductUseCase(trackers.Products),
		sales.NewListProductsUseCase(trackers.Products),
		sales.NewAddSaleUseCase(trackers.Products, trackers.Sales),
		sales.NewDeleteSaleUseCase(trackers.Sales),
		sales.NewListSalesUseCase(trackers.Sales),
		sales.NewGenerateScriptUseCase(trackers.Products, t.oracle),
		sales.NewSaveScriptUseCase(trackers.Products, trackers.SalesScripts),
		sales.NewDeleteScriptUseCase(trackers.SalesScripts),
		sales.NewListScriptsUseCase(trackers.SalesScripts),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetOverviewUseCase(trackers),
	)

	r := router.NewRouter(
		healthController,
		transactionController,
		betController,
		debtController,
		analysisController,
		agendaController,
		ideaController,
		salesController,
		dashboardController,
	)
	t.server = httptest.NewServer(r.Setup("test"))
	return nil
}

func (t *testContext) stopServer() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.database != nil {
		_ = t.database.Close()
		t.database = nil
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("server not started")
	}
	return nil
}

func (t *testContext) theOracleIsUnavailable() error {
	t.oracle.available = false
	return nil
}

func (t *testContext) theOracleResolvesBetsAs(result string) error {
	return t.oracle.setBetResult(result)
}

func (t *testContext) theOracleParsesEventsWith(title, date, timeOfDay string) error {
	t.oracle.setParsedEvent(title, date, timeOfDay)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.doRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.doRequest(method, path, strings.NewReader(body.Content))
}

// doRequest performs the HTTP call. The literal "{id}" in a path is
// replaced with the id captured from the last JSON response.
func (t *testContext) doRequest(method, path string, body io.Reader) error {
	path = strings.ReplaceAll(path, "{id}", t.lastID)

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	t.response = resp
	t.responseBody = data

	if id := extractID(data); id != "" {
		t.lastID = id
	}
	return nil
}

// extractID pulls the top-level id out of a JSON object response, if any.
func extractID(data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &payload); err != nil {
		return ""
	}
	if id, ok := payload["id"].(string); ok {
		return id
	}
	return ""
}

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if t.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, t.response.StatusCode, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(substring string) error {
	if !strings.Contains(string(t.responseBody), substring) {
		return fmt.Errorf("response does not contain %q: %s", substring, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(substring string) error {
	if strings.Contains(string(t.responseBody), substring) {
		return fmt.Errorf("response unexpectedly contains %q: %s", substring, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}
	actual := stringify(value)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

// lookupField walks a dot-separated path through the JSON response. Numeric
// segments index into arrays.
func (t *testContext) lookupField(field string) (any, error) {
	var payload any
	if err := json.Unmarshal(t.responseBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %s", t.responseBody)
	}

	current := payload
	for _, segment := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", field, t.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response: %s", field, t.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", field, t.responseBody)
		}
	}
	return current, nil
}

// stringify renders a decoded JSON value the way the feature files write it.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
