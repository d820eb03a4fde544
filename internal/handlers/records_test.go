package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylimit/internal/database"
	"skylimit/internal/models"
	"skylimit/internal/store"
)

// recordsDB opens the test database or skips.
func recordsDB(t *testing.T) *sql.DB {
	t.Helper()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	dsn := "postgres://skylimit:changeme@" + host + ":5432/skylimit?sslmode=disable"
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		dsn = v
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func newRecordsRouter(db *sql.DB) chi.Router {
	h := NewRecords(store.NewRecordStore(db), nil, discardLogger())

	r := chi.NewRouter()
	r.Route("/api/"+CollectionPattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Put)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

// testRecordsCleanup wipes the collections the test touched.
func testRecordsCleanup(t *testing.T, db *sql.DB, collections ...string) {
	t.Cleanup(func() {
		for _, c := range collections {
			db.Exec("DELETE FROM site_records WHERE collection = $1", c)
		}
	})
}

func TestFilmCRUD(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)
	testRecordsCleanup(t, db, "films")

	id := "test-film-" + uuid.NewString()[:8]
	body := `{"id":"` + id + `","title":"SARAH + TOM","youtubeUrl":"https://youtu.be/x"}`

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/films/", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/films/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var film models.Film
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &film))
	assert.Equal(t, "SARAH + TOM", film.Title)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/films/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/films/"+id, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDerivesIDFromTitle(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)
	testRecordsCleanup(t, db, "packages")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/packages/",
		strings.NewReader(`{"title":"The Premier Collection","price":"$4,500"}`)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "the-premier-collection", got["id"])
}

func TestCreateTestimonialAssignsNumericID(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)
	testRecordsCleanup(t, db, "testimonials")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/testimonials/",
		strings.NewReader(`{"quote":"Wonderful","client":"Emma & James"}`)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var tm models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tm))
	assert.Positive(t, tm.ID)
	assert.Equal(t, "Emma & James", tm.Client)

	// A second create gets the next id.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/testimonials/",
		strings.NewReader(`{"quote":"Amazing","client":"Lily & Sam"}`)))
	var tm2 models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tm2))
	assert.Equal(t, tm.ID+1, tm2.ID)
}

func TestCreateTestimonialValidates(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/testimonials/",
		strings.NewReader(`{"quote":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReturnsDisplayOrder(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)
	testRecordsCleanup(t, db, "addons")

	for _, body := range []string{
		`{"id":"second-shooter","title":"Second Shooter","price":"$800","order":1}`,
		`{"id":"drone","title":"Drone Coverage","price":"$500","order":0}`,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/addons/", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/addons/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []models.AddOn `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "drone", body.Items[0].ID)
	assert.Equal(t, "second-shooter", body.Items[1].ID)
}

func TestRouteRejectsUnknownCollection(t *testing.T) {
	db := recordsDB(t)
	r := newRecordsRouter(db)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
