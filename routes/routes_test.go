package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chordbook/config"
	"chordbook/controllers"
	"chordbook/sources/psql"
	"chordbook/sources/psql/dao"
)

// newTestApp assembles the full router over an in-memory database, the
// same wiring the server uses minus the process-level middleware.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, psql.Migrate(ctx, db))
	require.NoError(t, psql.Seed(ctx, db, "../db/chords.csv"))

	cfg := config.Config{
		JWTSecret:     "route-test-secret",
		TokenDuration: time.Hour,
		ClientID:      "myclientid",
		ClientSecret:  "myclientsecret",
	}

	noteDAO := dao.NewNoteDAO(db)
	chordDAO := dao.NewChordDAO(db)
	musicDAO := dao.NewMusicDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	userDAO := dao.NewUserDAO(db)
	roleDAO := dao.NewRoleDAO(db)

	r := chi.NewRouter()
	r.Mount("/notes", NoteRoutes(controllers.NewNoteController(noteDAO)))
	r.Mount("/chords", ChordRoutes(controllers.NewChordController(chordDAO, noteDAO)))
	r.Mount("/musics", MusicRoutes(
		controllers.NewMusicController(musicDAO, chordDAO),
		controllers.NewCommentController(commentDAO, musicDAO),
		cfg,
	))
	r.Mount("/users", UserRoutes(controllers.NewUserController(userDAO, roleDAO), cfg))
	authCtrl := controllers.NewAuthController(userDAO, cfg)
	r.Mount("/auth", AuthRoutes(authCtrl))
	r.Mount("/oauth2", TokenRoutes(authCtrl))
	return r
}

func doJSON(t *testing.T, app http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func registerAndLogin(t *testing.T, app http.Handler, username string) string {
	t.Helper()
	rec := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    username + "@example.com",
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeBody(t, rec)
	require.Equal(t, "Bearer", token["token_type"])
	return token["access_token"].(string)
}

func musicPayload(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": "about " + title,
		"releaseDate": "2019-03-22",
		"lyric": map[string]any{
			"text": "verse chorus verse",
			"chords": []map[string]any{
				{"chordId": 1, "position": 0},
				{"chordId": 8, "position": 16},
			},
		},
	}
}

func TestNotesEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/notes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 12)
	assert.Equal(t, "C", notes[0]["name"])
	assert.Equal(t, "NATURAL", notes[0]["accidental"])

	rec = doJSON(t, app, http.MethodPost, "/notes", "", map[string]any{
		"name":       "E",
		"accidental": "FLAT",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	assert.Equal(t, float64(13), created["id"])
}

func TestChordSearchQueryForms(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/chords/search?notes=C,E,G",
		"/chords/search?notes=C&notes=E&notes=G",
	} {
		rec := doJSON(t, app, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var chords []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chords))
		names := make([]string, 0, len(chords))
		for _, c := range chords {
			names = append(names, c["name"].(string))
		}
		assert.ElementsMatch(t, []string{"C Major", "C Major Seventh"}, names, path)
	}

	// No matches is still a 200 with an empty array, never a 404.
	rec := doJSON(t, app, http.MethodGet, "/chords/search?name=NonExistingChordName", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestChordListPageDefaults(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/chords", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody(t, rec)
	assert.Equal(t, float64(0), page["page"])
	assert.Equal(t, float64(20), page["size"])
	assert.Equal(t, float64(15), page["totalElements"])
	assert.Equal(t, float64(1), page["totalPages"])

	rec = doJSON(t, app, http.MethodGet, "/chords?page=1&size=10", "", nil)
	page = decodeBody(t, rec)
	assert.Equal(t, float64(1), page["page"])
	assert.Len(t, page["content"], 5)
}

func TestMusicLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "roadie")

	rec := doJSON(t, app, http.MethodPost, "/musics", token, musicPayload("Full Circle"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	id := created["id"].(string)
	assert.Equal(t, "2019-03-22", created["releaseDate"])

	lyric := created["lyric"].(map[string]any)
	chords := lyric["chords"].([]any)
	require.Len(t, chords, 2)
	first := chords[0].(map[string]any)
	assert.Equal(t, float64(1), first["chordId"])
	assert.Equal(t, float64(0), first["position"])

	// Reads are public.
	rec = doJSON(t, app, http.MethodGet, "/musics/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, app, http.MethodPatch, "/musics/"+id, token, map[string]any{
		"title": "Full Circle (Live)",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Full Circle (Live)", decodeBody(t, rec)["title"])

	rec = doJSON(t, app, http.MethodDelete, "/musics/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/musics/"+id, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentsOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "heckler")

	rec := doJSON(t, app, http.MethodPost, "/musics", token, musicPayload("Heckled"))
	require.Equal(t, http.StatusCreated, rec.Code)
	musicID := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, app, http.MethodPost, "/musics/"+musicID+"/comments", token, map[string]any{
		"body": "needs more cowbell",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	parent := decodeBody(t, rec)

	rec = doJSON(t, app, http.MethodPost, "/musics/"+musicID+"/comments", token, map[string]any{
		"body":     "it has enough cowbell",
		"parentId": parent["id"],
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/musics/"+musicID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody(t, rec)
	assert.Equal(t, float64(1), page["totalElements"])
	top := page["content"].([]any)[0].(map[string]any)
	assert.Len(t, top["replies"], 1)
}

func TestUnauthenticatedWriteEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/musics", "", musicPayload("Denied"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeBody(t, rec)
	assert.Equal(t, float64(401), env["status"])
	assert.Equal(t, "Invalid Credentials", env["error"])
	assert.Equal(t, "Email or Password invalid", env["message"])
	assert.Equal(t, "/musics", env["path"])
	assert.NotEmpty(t, env["timestamp"])

	rec = doJSON(t, app, http.MethodPost, "/musics", "garbage-token", musicPayload("Denied"))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidationEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodPost, "/users", "", map[string]any{
		"username": "validuser",
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeBody(t, rec)
	assert.Equal(t, "Validation Exception", env["error"])
	fields := env["errors"].([]any)
	require.Len(t, fields, 1)
	field := fields[0].(map[string]any)
	assert.Equal(t, "email", field["fieldName"])
	assert.Equal(t, "Email cannot be null", field["message"])
}

func TestMalformedJSONBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeBody(t, rec)
	assert.Equal(t, "Malformed JSON body", env["message"])
}

func TestOAuthTokenEndpoint(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "granted")

	form := url.Values{
		"grant_type": {"password"},
		"username":   {"granted@example.com"},
		"password":   {"passw0rd"},
	}
	req := httptest.NewRequest(http.MethodPost, "/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("myclientid", "myclientsecret")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, float64(3600), body["expires_in"])

	// Wrong client credentials never reach the user check.
	req = httptest.NewRequest(http.MethodPost, "/oauth2/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("myclientid", "wrong")
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unsupported grant types are rejected outright.
	bad := url.Values{"grant_type": {"client_credentials"}}
	req = httptest.NewRequest(http.MethodPost, "/oauth2/token", strings.NewReader(bad.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("myclientid", "myclientsecret")
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Unsupported grant type", decodeBody(t, rec)["message"])
}

func TestUsersMeRequiresToken(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "selfaware")

	rec := doJSON(t, app, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, app, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec)
	assert.Equal(t, "selfaware", me["username"])
	roles := me["roles"].([]any)
	require.Len(t, roles, 1)
	assert.Equal(t, "ROLE_CLIENT", roles[0].(map[string]any)["authority"])

	// Password hashes never serialize.
	_, present := me["password"]
	assert.False(t, present)
}

func TestMusicSearchNotFoundEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(t, app, http.MethodGet, "/musics?name=unheard", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeBody(t, rec)
	assert.Equal(t, "Resource not found", env["error"])
	assert.Equal(t, fmt.Sprintf("No musics found with name containing: %s", "unheard"), env["message"])
}
