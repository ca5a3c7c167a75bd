package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsc-elite/progress-hub/internal/application/command"
	"github.com/hsc-elite/progress-hub/internal/application/query"
	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/leveling"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/persistence/local"
)

// newTestServer wires a full engine over an in-memory store. No mirror, no
// event bus: the routes under test behave the same local-only.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := local.NewMemoryStore()
	catalog := curriculum.DefaultCatalog()
	levels := leveling.DefaultTable()

	follow := command.NewFollowPeerHandler(store, nil, nil, nil)

	cfg := DefaultConfig()
	cfg.ShareBaseURL = "https://hub.example.com/"

	return NewServer(cfg, Dependencies{
		SignUp:           command.NewSignUpHandler(store, nil, nil, nil, nil),
		LogIn:            command.NewLogInHandler(store, nil, nil, nil),
		LogOut:           command.NewLogOutHandler(store, nil),
		ToggleProgress:   command.NewToggleProgressHandler(store, nil, nil, catalog, levels, nil),
		FollowPeer:       follow,
		RestoreProfile:   command.NewRestoreProfileHandler(store, nil, nil, nil),
		ProcessShareLink: command.NewProcessShareLinkHandler(store, follow),

		GetProfile:     query.NewGetProfileHandler(store, levels),
		GetStats:       query.NewGetStatsHandler(store, catalog),
		GetLevels:      query.NewGetLevelsHandler(levels),
		GetShareLink:   query.NewGetShareLinkHandler(store),
		GetPeerBoard:   query.NewGetPeerBoardHandler(store, levels),
		GetPeerProfile: query.NewGetPeerProfileHandler(store, catalog, levels),
		ExplainTopic:   query.NewExplainTopicHandler(nil, catalog, nil),

		Store: store,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var env struct {
		OK   bool                   `json:"ok"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.OK, "expected ok envelope, got %s", rec.Body.String())
	return env.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env struct {
		OK    bool `json:"ok"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.OK)
	require.NotNil(t, env.Error)
	return env.Error.Code
}

func signUp(t *testing.T, h http.Handler, username, password string) {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/signup",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// AUTH FLOW
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUpAndMe(t *testing.T) {
	h := newTestServer(t).Handler()

	signUp(t, h, "Rafi", "pass123")

	rec := doJSON(t, h, http.MethodGet, "/api/v1/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "rafi", data["username"])
	assert.Equal(t, float64(0), data["xp"])
}

func TestSignUpDuplicate(t *testing.T) {
	h := newTestServer(t).Handler()

	signUp(t, h, "rafi", "pass123")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/signup",
		map[string]string{"username": "RAFI", "password": "other"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_exists", errorCode(t, rec))
}

func TestLogInWrongPassword(t *testing.T) {
	h := newTestServer(t).Handler()

	signUp(t, h, "rafi", "pass123")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"username": "rafi", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogOutClearsSession(t *testing.T) {
	h := newTestServer(t).Handler()

	signUp(t, h, "rafi", "pass123")
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no_session", errorCode(t, rec))
}

func TestMeWithoutSession(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// PROGRESS FLOW
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleTopicAndStats(t *testing.T) {
	h := newTestServer(t).Handler()
	signUp(t, h, "rafi", "pass123")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/progress/topic", map[string]string{
		"subject": "Physics 1st", "chapter": "Ch2: Vectors", "topic": "T-01: Vector Types",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, true, data["done"])
	assert.Equal(t, float64(10), data["new_xp"])

	rec = doJSON(t, h, http.MethodGet, "/api/v1/stats?subject=Physics+1st", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeData(t, rec)["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["completed_topics"])
}

func TestToggleMilestone(t *testing.T) {
	h := newTestServer(t).Handler()
	signUp(t, h, "rafi", "pass123")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/progress/milestone", map[string]string{
		"subject": "Physics 1st", "chapter": "Ch2: Vectors", "milestone": "theory-familiar",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, float64(50), data["new_xp"])
}

func TestToggleUnknownTopic(t *testing.T) {
	h := newTestServer(t).Handler()
	signUp(t, h, "rafi", "pass123")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/progress/topic", map[string]string{
		"subject": "Physics 1st", "chapter": "Ch2: Vectors", "topic": "T-99: Nope",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleTopicMissingField(t *testing.T) {
	h := newTestServer(t).Handler()
	signUp(t, h, "rafi", "pass123")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/progress/topic",
		map[string]string{"subject": "Physics 1st"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", errorCode(t, rec))
}

func TestLevelsIsPublic(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/v1/levels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	levels := decodeData(t, rec)["levels"].([]interface{})
	assert.Len(t, levels, 12)
}

// ──────────────────────────────────────────────────────────────────────────────
// SHARE & SOCIAL FLOW
// ──────────────────────────────────────────────────────────────────────────────

func TestShareFollowBoardFlow(t *testing.T) {
	// Два независимых движка: у "peer" генерируется токен, "owner" его
	// импортирует.
	peerSrv := newTestServer(t).Handler()
	signUp(t, peerSrv, "peer", "pass123")
	rec := doJSON(t, peerSrv, http.MethodPost, "/api/v1/progress/topic", map[string]string{
		"subject": "Physics 1st", "chapter": "Ch2: Vectors", "topic": "T-01: Vector Types",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, peerSrv, http.MethodGet, "/api/v1/share", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	share := decodeData(t, rec)
	token := share["token"].(string)
	require.NotEmpty(t, token)
	assert.Contains(t, share["link"], "https://hub.example.com/#follow=")

	ownerSrv := newTestServer(t).Handler()
	signUp(t, ownerSrv, "owner", "pass123")

	rec = doJSON(t, ownerSrv, http.MethodPost, "/api/v1/follow", map[string]string{"token": token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	followed := decodeData(t, rec)
	assert.Equal(t, "peer", followed["peer"])
	assert.Equal(t, false, followed["refreshed"])

	rec = doJSON(t, ownerSrv, http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeData(t, rec)["entries"].([]interface{})
	require.Len(t, entries, 2)
	top := entries[0].(map[string]interface{})
	assert.Equal(t, "peer", top["username"])
	assert.Equal(t, float64(10), top["xp"])

	rec = doJSON(t, ownerSrv, http.MethodGet, "/api/v1/peers/peer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	peer := decodeData(t, rec)
	assert.Equal(t, "peer", peer["username"])
}

func TestFollowGarbageToken(t *testing.T) {
	h := newTestServer(t).Handler()
	signUp(t, h, "rafi", "pass123")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/follow", map[string]string{"token": "!!!not-base64!!!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestoreFromToken(t *testing.T) {
	srcSrv := newTestServer(t).Handler()
	signUp(t, srcSrv, "rafi", "pass123")
	rec := doJSON(t, srcSrv, http.MethodPost, "/api/v1/progress/topic", map[string]string{
		"subject": "Physics 1st", "chapter": "Ch2: Vectors", "topic": "T-02: Resultant",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, srcSrv, http.MethodGet, "/api/v1/share", nil)
	token := decodeData(t, rec)["token"].(string)

	dstSrv := newTestServer(t).Handler()
	rec = doJSON(t, dstSrv, http.MethodPost, "/api/v1/restore", map[string]string{"token": token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, "rafi", data["username"])
	assert.Equal(t, float64(10), data["xp"])

	rec = doJSON(t, dstSrv, http.MethodGet, "/api/v1/me", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProcessShareLinkWithoutSession(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/link",
		map[string]string{"link": "https://hub.example.com/#follow=abc"})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, true, data["no_session"])
	assert.Equal(t, true, data["clear_fragment"])
}

// ──────────────────────────────────────────────────────────────────────────────
// EXPLAIN & HEALTH
// ──────────────────────────────────────────────────────────────────────────────

func TestExplainWithoutModelServesFallback(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet,
		"/api/v1/explain?subject=Physics+1st&chapter=Ch2%3A+Vectors&topic=T-01%3A+Vector+Types", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeData(t, rec)
	assert.Equal(t, true, data["fallback"])
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "ok", data["status"])
}

func TestMalformedBody(t *testing.T) {
	h := newTestServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
