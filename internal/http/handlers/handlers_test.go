package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/handball"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexInt
		wantErr bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"seven"`, 0, true},
		{`7.5`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddPlayerHandler(t *testing.T) {
	store := club.NewMock()
	m := metrics.NewMock()

	req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(`{"name":"Marta","position":"Central","number":"7","category":"FEMENINO"}`))
	rr := httptest.NewRecorder()
	AddPlayerHandler(store, m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.AddPlayerCalls, 1)
	assert.Equal(t, handball.Player{Name: "Marta", Position: "Central", Number: 7, Category: handball.CategoryFemale}, store.AddPlayerCalls[0])
	assert.Equal(t, 1, m.PlayersCreated())
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	store := club.NewMock()
	store.GetAllPlayersFunc = func() ([]handball.Player, error) {
		return nil, errors.New("disk I/O error")
	}

	rr := httptest.NewRecorder()
	ListPlayersHandler(store).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/players", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "disk")
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

func TestGetPlayerHandler(t *testing.T) {
	store := club.NewMock()
	store.GetPlayerFunc = func(id int64) (*handball.Player, error) {
		if id == 3 {
			return &handball.Player{ID: 3, Name: "Irene"}, nil
		}
		return nil, handball.ErrNotFound
	}

	for id, want := range map[string]int{"3": http.StatusOK, "4": http.StatusNotFound, "x": http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodGet, "/players/"+id, nil)
		req.SetPathValue("id", id)
		rr := httptest.NewRecorder()
		GetPlayerHandler(store).ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Code, id)
	}
	assert.ElementsMatch(t, []int64{3, 4}, store.GetPlayerCalls)
}

func TestUpdateMatchStatsHandler(t *testing.T) {
	store := matches.NewMock()
	store.GetMatchFunc = func(id int64) (*handball.Match, error) {
		return &handball.Match{ID: id, Opponent: "Rivas"}, nil
	}
	m := metrics.NewMock()
	proc := processor.New(store, nil, m, nil)

	req := httptest.NewRequest(http.MethodPatch, "/matches/5", strings.NewReader(`{"updatedStats":[{"matchPlayerId":10,"goals":3,"playTime":600}]}`))
	req.SetPathValue("id", "5")
	rr := httptest.NewRecorder()
	UpdateMatchStatsHandler(store, proc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	calls := store.Updates()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(5), calls[0].ID)
	assert.Nil(t, calls[0].OpponentScore)
	require.Len(t, calls[0].Updates, 1)
	assert.Equal(t, 3, calls[0].Updates[0].Goals)
	assert.Equal(t, 600, calls[0].Updates[0].PlayTime)
	assert.Equal(t, 1, m.MatchesFinalized())
}

func TestCompareHandlerUnknownPlayer(t *testing.T) {
	clubs := club.NewMock()
	clubs.GetPlayersFunc = func(ids []int64) ([]handball.Player, error) {
		return []handball.Player{{ID: 1, Name: "Marta"}}, nil
	}
	store := matches.NewMock()

	rr := httptest.NewRecorder()
	CompareHandler(clubs, store).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stats/compare?player1=1&player2=2", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "player 2")
}

func TestSetThemeHandler(t *testing.T) {
	store := settings.NewMock()

	rr := httptest.NewRecorder()
	SetThemeHandler(store).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/preferences/theme", strings.NewReader(`{"theme":"dark"}`)))
	require.Equal(t, http.StatusOK, rr.Code)
	theme, err := store.GetTheme()
	require.NoError(t, err)
	assert.Equal(t, handball.ThemeDark, theme)

	store.SetThemeFunc = func(theme handball.Theme) error {
		return errors.New("database is locked")
	}
	rr = httptest.NewRecorder()
	SetThemeHandler(store).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/preferences/theme", strings.NewReader(`{"theme":"light"}`)))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	theme, _ = store.GetTheme()
	assert.Equal(t, handball.ThemeDark, theme)
}

func TestMassEmailHandlerWithoutMailer(t *testing.T) {
	rr := httptest.NewRecorder()
	MassEmailHandler(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mass-email", strings.NewReader(`{"toEmails":"a@x.com"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var resp MassEmailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
