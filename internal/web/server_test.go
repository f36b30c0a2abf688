package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"anthropic-dashboard/internal/adapters/otel"
	"anthropic-dashboard/internal/anthropic"
	"anthropic-dashboard/internal/bindings"
	"anthropic-dashboard/internal/service"
)

// testServer runs a dashboard server on demo data: the client has no admin
// key, so no network calls leave the test.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	client, err := anthropic.NewClient(anthropic.Config{}, logger)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(client.Close)

	svc := service.New(client, otel.NewNoOpExporter(), logger, false)
	srv := httptest.NewServer(NewServer(svc, 0, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestIndexServed(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}
}

func TestStaticAssets(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/static/main.css", "/static/main.js"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := testServer(t)

	var stats map[string]string
	getJSON(t, srv.URL+"/api/stats", &stats)

	for _, field := range []string{"total_tokens", "total_cost", "active_models", "api_calls", "source"} {
		if stats[field] == "" {
			t.Errorf("missing field %q in %v", field, stats)
		}
	}
	if stats["source"] != "demo" {
		t.Errorf("expected demo source without a key, got %q", stats["source"])
	}
	if !strings.HasPrefix(stats["total_cost"], "$") {
		t.Errorf("expected formatted cost, got %q", stats["total_cost"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := testServer(t)

	var status struct {
		Status     string `json:"status"`
		Message    string `json:"message"`
		LastUpdate string `json:"last_update"`
	}
	getJSON(t, srv.URL+"/api/status", &status)

	if status.Status != "demo" {
		t.Errorf("expected demo status, got %q", status.Status)
	}
	if !strings.Contains(status.Message, "ANTHROPIC_ADMIN_KEY") {
		t.Errorf("expected missing-key message, got %q", status.Message)
	}
	if status.LastUpdate == "" {
		t.Error("expected a last_update timestamp")
	}
}

func TestTokenChartEndpoint(t *testing.T) {
	srv := testServer(t)

	var chart struct {
		Date         []string `json:"date"`
		InputTokens  []int64  `json:"input_tokens"`
		OutputTokens []int64  `json:"output_tokens"`
	}
	getJSON(t, srv.URL+"/api/charts/tokens", &chart)

	if len(chart.Date) == 0 {
		t.Fatal("expected chart data")
	}
	if len(chart.InputTokens) != len(chart.Date) || len(chart.OutputTokens) != len(chart.Date) {
		t.Error("columns must share the same length")
	}
	for i := 1; i < len(chart.Date); i++ {
		if chart.Date[i] < chart.Date[i-1] {
			t.Fatalf("dates not sorted at index %d", i)
		}
	}
}

func TestUsageTableEndpoint_Sorted(t *testing.T) {
	srv := testServer(t)

	var table struct {
		Date        []string `json:"date"`
		InputTokens []int64  `json:"input_tokens"`
	}
	getJSON(t, srv.URL+"/api/tables/usage?sort=input_tokens&order=desc", &table)

	if len(table.InputTokens) == 0 {
		t.Fatal("expected table rows")
	}
	for i := 1; i < len(table.InputTokens); i++ {
		if table.InputTokens[i] > table.InputTokens[i-1] {
			t.Fatalf("tokens not descending at index %d", i)
		}
	}
}

func TestFiltersEndpoint(t *testing.T) {
	srv := testServer(t)

	var filters struct {
		Workspaces []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"available_workspaces"`
		APIKeys []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"available_api_keys"`
		Models []string `json:"available_models"`
	}
	getJSON(t, srv.URL+"/api/filters", &filters)

	if len(filters.Workspaces) == 0 {
		t.Error("expected workspace options")
	}
	if len(filters.APIKeys) == 0 {
		t.Error("expected API key options")
	}
	if len(filters.Models) == 0 {
		t.Error("expected model options")
	}
}

func wsDial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUpdates(t *testing.T, conn *websocket.Conn, n int) map[string]json.RawMessage {
	t.Helper()

	outputs := make(map[string]json.RawMessage)
	for len(outputs) < n {
		var frame struct {
			Type    string          `json:"type"`
			Name    string          `json:"name"`
			Value   json.RawMessage `json:"value"`
			Level   string          `json:"level"`
			Message string          `json:"message"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if frame.Type == bindings.TypeUpdate {
			outputs[frame.Name] = frame.Value
		}
	}
	return outputs
}

func TestBindingsChannel_InitialPush(t *testing.T) {
	srv := testServer(t)
	conn := wsDial(t, srv)

	outputs := readUpdates(t, conn, 13)

	for _, name := range []string{
		bindings.OutputTotalTokens, bindings.OutputAPIStatus,
		bindings.OutputTokenChart, bindings.OutputUsageTable,
		bindings.OutputWorkspaces, bindings.OutputModels,
	} {
		if _, ok := outputs[name]; !ok {
			t.Errorf("missing initial output %q", name)
		}
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(outputs[bindings.OutputAPIStatus], &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Status != "demo" {
		t.Errorf("expected demo status, got %q", status.Status)
	}
}

func TestBindingsChannel_InputTriggersRepush(t *testing.T) {
	srv := testServer(t)
	conn := wsDial(t, srv)

	readUpdates(t, conn, 13)

	msg := map[string]any{"type": "input", "name": bindings.InputGranularity, "value": "1h"}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write input: %v", err)
	}

	outputs := readUpdates(t, conn, 13)
	var chart struct {
		Date []string `json:"date"`
	}
	if err := json.Unmarshal(outputs[bindings.OutputTokenChart], &chart); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(chart.Date) == 0 {
		t.Fatal("expected chart data after recompute")
	}
	// Hourly granularity switches to hour-precision bucket keys
	if !strings.Contains(chart.Date[0], ":") {
		t.Errorf("expected hourly bucket keys, got %q", chart.Date[0])
	}
}

func TestBindingsChannel_InvalidInputToasts(t *testing.T) {
	srv := testServer(t)
	conn := wsDial(t, srv)

	readUpdates(t, conn, 13)

	msg := map[string]any{"type": "input", "name": bindings.InputGranularity, "value": "2w"}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var frame struct {
		Type    string `json:"type"`
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if frame.Type != bindings.TypeToast {
		t.Fatalf("expected toast frame, got %q", frame.Type)
	}
	if frame.Level != bindings.ToastError {
		t.Errorf("expected error toast, got %q", frame.Level)
	}
	if !strings.Contains(frame.Message, "granularity") {
		t.Errorf("unexpected toast message %q", frame.Message)
	}
}
