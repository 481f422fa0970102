package router_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"focusflow/backend/internal/db"
	"focusflow/backend/internal/handler"
	"focusflow/backend/internal/repository"
	"focusflow/backend/internal/router"
	"focusflow/backend/internal/service"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type taskEnvelope struct {
	Task struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Priority string `json:"priority"`
		Status   string `json:"status"`
	} `json:"task"`
}

type planEnvelope struct {
	Plan struct {
		Tasks []struct {
			SourceTaskID    string `json:"sourceTaskId"`
			Title           string `json:"title"`
			DurationMinutes int    `json:"durationMinutes"`
			Encouragement   string `json:"encouragement"`
		} `json:"tasks"`
		FocusTime           int    `json:"focusTime"`
		BreakTime           int    `json:"breakTime"`
		TotalTime           int    `json:"totalTime"`
		BreakSuggestion     string `json:"breakSuggestion"`
		SensoryBoost        string `json:"sensoryBoost"`
		MotivationalMessage string `json:"motivationalMessage"`
	} `json:"plan"`
}

type sessionEnvelope struct {
	Session struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"session"`
}

type historyEnvelope struct {
	Sessions []struct {
		ID          string `json:"id"`
		EnergyLevel string `json:"energyLevel"`
		Status      string `json:"status"`
	} `json:"sessions"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestFocusPlanFromTasks(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "planner@example.com", "123456")

	for _, title := range []string{"ship report", "review budget", "draft proposal"} {
		status, body := requestJSON(t, engine, http.MethodPost, "/api/tasks", user.Token, map[string]string{
			"title":    title,
			"priority": "high",
		})
		if status != http.StatusCreated {
			t.Fatalf("create task %q: status %d: %s", title, status, string(body))
		}
	}

	status, body := requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"energyLevel":   "energized",
		"timeAvailable": 45,
		"focusArea":     "any",
	})
	if status != http.StatusOK {
		t.Fatalf("generate plan: status %d: %s", status, string(body))
	}

	var resp planEnvelope
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if resp.Plan.FocusTime != 38 || resp.Plan.BreakTime != 7 {
		t.Fatalf("expected 38/7 split, got %d/%d", resp.Plan.FocusTime, resp.Plan.BreakTime)
	}
	if resp.Plan.TotalTime != 45 {
		t.Fatalf("expected total 45, got %d", resp.Plan.TotalTime)
	}
	if len(resp.Plan.Tasks) != 3 {
		t.Fatalf("expected 3 tasks in plan, got %d", len(resp.Plan.Tasks))
	}
	sum := 0
	for _, task := range resp.Plan.Tasks {
		if task.SourceTaskID == "" {
			t.Fatal("plan task missing source id")
		}
		sum += task.DurationMinutes
	}
	if sum != resp.Plan.FocusTime {
		t.Fatalf("task minutes sum %d != focus %d", sum, resp.Plan.FocusTime)
	}
	if resp.Plan.BreakSuggestion == "" || resp.Plan.SensoryBoost == "" || resp.Plan.MotivationalMessage == "" {
		t.Fatal("plan missing suggestion copy")
	}
}

func TestFocusPlanSelfGuidedAndQuery(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "empty@example.com", "123456")

	// No tasks at all: still a valid self-guided plan.
	status, body := requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"energyLevel":   "sluggish",
		"timeAvailable": 15,
		"focusArea":     "any",
	})
	if status != http.StatusOK {
		t.Fatalf("self-guided plan: status %d: %s", status, string(body))
	}
	var resp planEnvelope
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if resp.Plan.FocusTime != 10 || resp.Plan.BreakTime != 5 {
		t.Fatalf("expected 10/5 split, got %d/%d", resp.Plan.FocusTime, resp.Plan.BreakTime)
	}
	if len(resp.Plan.Tasks) == 0 {
		t.Fatal("expected placeholder tasks")
	}
	for _, task := range resp.Plan.Tasks {
		if task.SourceTaskID != "" {
			t.Fatal("placeholder task must not carry a source id")
		}
	}

	// Free-text query path: keywords drive the inputs.
	status, body = requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"query": "feeling wired, got half hour for emails",
	})
	if status != http.StatusOK {
		t.Fatalf("query plan: status %d: %s", status, string(body))
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal query plan: %v", err)
	}
	if resp.Plan.TotalTime != 30 {
		t.Fatalf("query should infer 30 minutes, got total %d", resp.Plan.TotalTime)
	}
	if resp.Plan.FocusTime != 22 || resp.Plan.BreakTime != 8 {
		t.Fatalf("wired/30 should split 22/8, got %d/%d", resp.Plan.FocusTime, resp.Plan.BreakTime)
	}
}

func TestFocusPlanRejectsBadTime(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "badtime@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"energyLevel":   "balanced",
		"timeAvailable": 20,
		"focusArea":     "any",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for 20 minutes, got %d: %s", status, string(body))
	}
	var errResp apiErrorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if errResp.Error.Code != "invalid_plan_input" {
		t.Fatalf("expected invalid_plan_input, got %s", errResp.Error.Code)
	}
}

func TestSessionRecordingAndReflection(t *testing.T) {
	engine := setupTestEngine(t)
	user1 := registerUser(t, engine, "s1@example.com", "123456")
	user2 := registerUser(t, engine, "s2@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPost, "/api/focus/sessions", user1.Token, map[string]interface{}{
		"energyLevel":  "anxious",
		"focusMinutes": 33,
		"breakMinutes": 12,
		"taskCount":    2,
	})
	if status != http.StatusCreated {
		t.Fatalf("start session: status %d: %s", status, string(body))
	}
	var created sessionEnvelope
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}
	if created.Session.Status != "started" {
		t.Fatalf("expected started, got %s", created.Session.Status)
	}

	status, body = requestJSON(t, engine, http.MethodPut,
		"/api/focus/sessions/"+created.Session.ID+"/reflection", user1.Token, map[string]interface{}{
			"completed": true,
			"feeling":   "calmer",
			"note":      "good session",
		})
	if status != http.StatusOK {
		t.Fatalf("reflection: status %d: %s", status, string(body))
	}
	var updated sessionEnvelope
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("unmarshal reflection: %v", err)
	}
	if updated.Session.Status != "completed" {
		t.Fatalf("expected completed, got %s", updated.Session.Status)
	}

	// User isolation: user2 cannot reach user1's session and sees no history.
	status, _ = requestJSON(t, engine, http.MethodPut,
		"/api/focus/sessions/"+created.Session.ID+"/reflection", user2.Token, map[string]interface{}{
			"completed": false,
		})
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for other user's session, got %d", status)
	}

	status, body = requestJSON(t, engine, http.MethodGet, "/api/focus/sessions?limit=10", user1.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("history: status %d: %s", status, string(body))
	}
	var history historyEnvelope
	if err := json.Unmarshal(body, &history); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(history.Sessions) != 1 || history.Sessions[0].EnergyLevel != "anxious" {
		t.Fatalf("unexpected history: %+v", history.Sessions)
	}
}

func TestTaskLifecycleFeedsPlanner(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "tasks@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPost, "/api/tasks", user.Token, map[string]string{
		"title":    "file expenses",
		"priority": "low",
	})
	if status != http.StatusCreated {
		t.Fatalf("create task: status %d: %s", status, string(body))
	}
	var created taskEnvelope
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal task: %v", err)
	}

	// Completed tasks leave the candidate pool.
	status, _ = requestJSON(t, engine, http.MethodPut, "/api/tasks/"+created.Task.ID, user.Token, map[string]string{
		"status": "done",
	})
	if status != http.StatusOK {
		t.Fatalf("complete task: status %d", status)
	}

	status, body = requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"energyLevel":   "balanced",
		"timeAvailable": 30,
		"focusArea":     "admin",
	})
	if status != http.StatusOK {
		t.Fatalf("plan after completion: status %d: %s", status, string(body))
	}
	var planResp planEnvelope
	if err := json.Unmarshal(body, &planResp); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	for _, task := range planResp.Plan.Tasks {
		if task.SourceTaskID == created.Task.ID {
			t.Fatal("completed task leaked into the plan")
		}
	}

	// Selecting an unknown task id is rejected.
	status, _ = requestJSON(t, engine, http.MethodPost, "/api/focus/plan", user.Token, map[string]interface{}{
		"energyLevel":   "balanced",
		"timeAvailable": 30,
		"focusArea":     "any",
		"taskIds":       []string{"nope"},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown task id, got %d", status)
	}
}

func TestHabitLogIdempotentPerDay(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "habits@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPost, "/api/habits", user.Token, map[string]string{
		"name": "morning stretch",
		"cue":  "after coffee",
	})
	if status != http.StatusCreated {
		t.Fatalf("create habit: status %d: %s", status, string(body))
	}
	var habitResp struct {
		Habit struct {
			ID string `json:"id"`
		} `json:"habit"`
	}
	if err := json.Unmarshal(body, &habitResp); err != nil {
		t.Fatalf("unmarshal habit: %v", err)
	}

	for i := 0; i < 2; i++ {
		status, body = requestJSON(t, engine, http.MethodPost, "/api/habits/"+habitResp.Habit.ID+"/log", user.Token, nil)
		if status != http.StatusCreated {
			t.Fatalf("log habit attempt %d: status %d: %s", i, status, string(body))
		}
	}

	status, body = requestJSON(t, engine, http.MethodGet, "/api/habits/"+habitResp.Habit.ID+"/logs", user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("list logs: status %d: %s", status, string(body))
	}
	var logsResp struct {
		Logs []struct {
			Date string `json:"date"`
		} `json:"logs"`
	}
	if err := json.Unmarshal(body, &logsResp); err != nil {
		t.Fatalf("unmarshal logs: %v", err)
	}
	if len(logsResp.Logs) != 1 {
		t.Fatalf("expected one log for today, got %d", len(logsResp.Logs))
	}
}

func TestCalendarEventRange(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "calendar@example.com", "123456")

	mk := func(title, start, end string) {
		status, body := requestJSON(t, engine, http.MethodPost, "/api/events", user.Token, map[string]string{
			"title":    title,
			"startsAt": start,
			"endsAt":   end,
		})
		if status != http.StatusCreated {
			t.Fatalf("create event %q: status %d: %s", title, status, string(body))
		}
	}
	mk("standup", "2026-09-01T09:00:00Z", "2026-09-01T09:15:00Z")
	mk("review", "2026-09-02T14:00:00Z", "2026-09-02T15:00:00Z")

	status, body := requestJSON(t, engine, http.MethodGet,
		"/api/events?from=2026-09-01T00:00:00Z&to=2026-09-02T00:00:00Z", user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("list events: status %d: %s", status, string(body))
	}
	var resp struct {
		Events []struct {
			Title string `json:"title"`
		} `json:"events"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal events: %v", err)
	}
	if len(resp.Events) != 1 || resp.Events[0].Title != "standup" {
		t.Fatalf("range filter returned %+v", resp.Events)
	}

	// endsAt before startsAt is rejected.
	status, _ = requestJSON(t, engine, http.MethodPost, "/api/events", user.Token, map[string]string{
		"title":    "backwards",
		"startsAt": "2026-09-03T10:00:00Z",
		"endsAt":   "2026-09-03T09:00:00Z",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted times, got %d", status)
	}
}

func TestRewriteProxiesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Rewritten."}}]}`))
	}))
	defer upstream.Close()

	engine := setupTestEngineWithRewrite(t, upstream.URL)
	user := registerUser(t, engine, "rewrite@example.com", "123456")

	status, body := requestJSON(t, engine, http.MethodPost, "/api/rewrite", user.Token, map[string]string{
		"text": "pls fix this sentnce",
		"tone": "formal",
	})
	if status != http.StatusOK {
		t.Fatalf("rewrite: status %d: %s", status, string(body))
	}
	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal rewrite: %v", err)
	}
	if resp.Text != "Rewritten." {
		t.Fatalf("unexpected rewrite result %q", resp.Text)
	}
}

func TestCORSPreflight(t *testing.T) {
	engine := setupTestEngine(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	recorder := httptest.NewRecorder()

	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", recorder.Code)
	}
	if recorder.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin header: %s", recorder.Header().Get("Access-Control-Allow-Origin"))
	}
}

func setupTestEngine(t *testing.T) http.Handler {
	return setupTestEngineWithRewrite(t, "http://127.0.0.1:0")
}

func setupTestEngineWithRewrite(t *testing.T, rewriteURL string) http.Handler {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	if err := db.Migrate(database, migrationsDir); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	habitRepo := repository.NewHabitRepository(database)
	eventRepo := repository.NewEventRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	authService := service.NewAuthService(userRepo, "test-secret", 24*time.Hour)
	random := rand.New(rand.NewSource(1)).Float64
	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Task:     handler.NewTaskHandler(service.NewTaskService(taskRepo)),
		Habit:    handler.NewHabitHandler(service.NewHabitService(habitRepo)),
		Calendar: handler.NewCalendarHandler(service.NewCalendarService(eventRepo)),
		Focus:    handler.NewFocusHandler(service.NewFocusService(taskRepo, sessionRepo, random)),
		Rewrite:  handler.NewRewriteHandler(service.NewRewriteService(rewriteURL, "test-key", "test-model", 2*time.Second)),
	}

	return router.New(authService, handlers, []string{"http://localhost:5173"})
}

func registerUser(t *testing.T, server http.Handler, email, password string) authResponse {
	t.Helper()
	status, body := requestJSON(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s failed with status %d: %s", email, status, string(body))
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token for user %s", email)
	}
	return resp
}

func requestJSON(
	t *testing.T,
	server http.Handler,
	method, path, token string,
	body interface{},
) (int, []byte) {
	t.Helper()

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = raw
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.Body.Bytes()
}
