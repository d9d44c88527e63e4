package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/programme-lv/scoreboard/board"
	"github.com/programme-lv/scoreboard/feed"
	boardhttp "github.com/programme-lv/scoreboard/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubSource struct {
	contest *feed.Contest
}

func (s stubSource) LoadContest(ctx context.Context) (*feed.Contest, error) {
	return s.contest, nil
}

func testFeed() *feed.Contest {
	start := time.Date(2024, 10, 6, 9, 0, 0, 0, time.UTC)
	contest := board.NewContest(board.ContestConfig{
		Name:       "HTTP Test Contest",
		StartTime:  start,
		EndTime:    start.Add(5 * time.Hour),
		Penalty:    1200,
		ProblemIDs: []string{"A", "B"},
		GroupNames: map[string]string{"official": "Official"},
	})
	teams := []*board.Team{
		{ID: "1", Name: "Alpha", GroupIDs: []string{"official"}},
		{ID: "2", Name: "Beta"},
	}
	subs := []*board.Submission{
		{ID: "1", TeamID: "1", ProblemID: "A", Timestamp: 1000, Verdict: board.VerdictWrongAnswer},
		{ID: "2", TeamID: "1", ProblemID: "A", Timestamp: 3000, Verdict: board.VerdictAccepted},
		{ID: "3", TeamID: "2", ProblemID: "A", Timestamp: 12000, Verdict: board.VerdictAccepted},
	}
	return &feed.Contest{Contest: contest, Teams: teams, Submissions: subs}
}

func newTestServer(t *testing.T) *boardhttp.HttpServer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	server := boardhttp.NewHttpServer(
		stubSource{contest: testFeed()},
		[]byte("test-jwt-key"),
		"admin",
		string(hash),
	)
	_, err = server.Reload(context.Background())
	require.NoError(t, err)
	return server
}

func doRequest(t *testing.T, server *boardhttp.HttpServer, req *http.Request) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGetScoreboard(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/scoreboard", nil)
	rec, body := doRequest(t, server, req)
	require.Equal(t, http.StatusOK, rec.Code)

	data := struct {
		Group string `json:"group"`
		Rows  []struct {
			Rank        int    `json:"rank"`
			TeamID      string `json:"team_id"`
			SolvedCount int    `json:"solved_count"`
			Penalty     int64  `json:"penalty"`
		} `json:"rows"`
	}{}
	require.NoError(t, json.Unmarshal(body["data"], &data))

	assert.Equal(t, "all", data.Group)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "1", data.Rows[0].TeamID)
	assert.Equal(t, 1, data.Rows[0].Rank)
	assert.Equal(t, int64(4200), data.Rows[0].Penalty)
	assert.Equal(t, "2", data.Rows[1].TeamID)
	assert.Equal(t, 2, data.Rows[1].Rank)
}

func TestGetScoreboardWithWidth(t *testing.T) {
	server := newTestServer(t)

	// Width 2000 of an 18000s contest cuts the replay off at 3600s,
	// before Beta's accepted submission at 12000s.
	req := httptest.NewRequest("GET", "/scoreboard?width=2000", nil)
	rec, body := doRequest(t, server, req)
	require.Equal(t, http.StatusOK, rec.Code)

	data := struct {
		Rows []struct {
			TeamID      string `json:"team_id"`
			SolvedCount int    `json:"solved_count"`
		} `json:"rows"`
	}{}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.Len(t, data.Rows, 2)
	assert.Equal(t, 1, data.Rows[0].SolvedCount)
	assert.Equal(t, 0, data.Rows[1].SolvedCount)
}

func TestGetScoreboardGroupFilter(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/scoreboard?group=official", nil)
	rec, body := doRequest(t, server, req)
	require.Equal(t, http.StatusOK, rec.Code)

	data := struct {
		Rows []struct {
			TeamID string `json:"team_id"`
		} `json:"rows"`
	}{}
	require.NoError(t, json.Unmarshal(body["data"], &data))
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "1", data.Rows[0].TeamID)
}

func TestGetScoreboardUnknownGroup(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/scoreboard?group=nope", nil)
	rec, _ := doRequest(t, server, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetScoreboardInvalidWidth(t *testing.T) {
	server := newTestServer(t)

	for _, width := range []string{"-1", "10001", "abc"} {
		req := httptest.NewRequest("GET", "/scoreboard?width="+width, nil)
		rec, _ := doRequest(t, server, req)
		assert.Equalf(t, http.StatusBadRequest, rec.Code, "width=%s", width)
	}
}

func TestRequestLogsCarrySnapshotID(t *testing.T) {
	server := newTestServer(t)

	snapshotID, err := server.Reload(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	// The unknown-group path logs through the request's context
	// logger, which the router tags with the current snapshot id.
	req := httptest.NewRequest("GET", "/scoreboard?group=nope", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "snapshot_id="+snapshotID)
}

func TestReloadRequiresAdminToken(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("POST", "/scoreboard/reload", nil)
	rec, _ := doRequest(t, server, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginAndReload(t *testing.T) {
	server := newTestServer(t)

	loginBody := `{"username": "admin", "password": "hunter2"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(loginBody))
	rec, body := doRequest(t, server, req)
	require.Equal(t, http.StatusOK, rec.Code)

	login := struct {
		Token string `json:"token"`
	}{}
	require.NoError(t, json.Unmarshal(body["data"], &login))
	require.NotEmpty(t, login.Token)

	req = httptest.NewRequest("POST", "/scoreboard/reload", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec, _ = doRequest(t, server, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	server := newTestServer(t)

	loginBody := `{"username": "admin", "password": "wrong"}`
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(loginBody))
	rec, _ := doRequest(t, server, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
