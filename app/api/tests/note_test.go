package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/codedpad/pad-api/app/api/handlers"
	"github.com/codedpad/pad-api/business/v1/note"
	"github.com/codedpad/pad-api/persistence/v1/schema"
	"github.com/codedpad/pad-api/platform/env"
	"github.com/codedpad/pad-api/platform/logger"
	"github.com/codedpad/pad-api/sys"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	app http.Handler
}

func TestNote(t *testing.T) {
	log, err := logger.New("Pad-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql in place of mysql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "PadNoteTest")
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := ramDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = ramDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr: sys.Configs.Cache.ConnectionURL,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	// =======================================================================================================
	// Setup router
	engine := gin.Default()

	handlers.MapApi(engine)

	tests := NoteTests{
		engine,
	}

	// =======================================================================================================
	// Run tests

	tests.createNote201(t)
	tests.createNoteMissingContent400(t)
	tests.createNoteLockedWithoutCode400(t)
	tests.listNotesLockedWithoutCode(t)
	tests.listNotesWithMatchingCode(t)
	tests.listNotesWithWrongCode(t)
	tests.getNoteGated(t)
	tests.deleteNoteByStranger403(t)
	tests.deleteNoteByOwner200(t)
}

func (nt *NoteTests) postNote(t *testing.T, body note.NewNote) *httptest.ResponseRecorder {
	marshal, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal note body: %v", err)
	}
	r := httptest.NewRequest(http.MethodPost, "/v1/notes", bytes.NewReader(marshal))
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) createNote201(t *testing.T) {
	w := nt.postNote(t, note.NewNote{
		OwnerId:     "alice",
		Title:       "secret note",
		Content:     "my secret text",
		PadLocked:   true,
		PadLockCode: "xyz",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response: %v %s", w.Code, w.Body)
	}

	w = nt.postNote(t, note.NewNote{
		OwnerId: "alice",
		Title:   "open note",
		Content: "my open text",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Test createNote201: Should receive a status code of 201 for the response: %v %s", w.Code, w.Body)
	}
}

func (nt *NoteTests) createNoteMissingContent400(t *testing.T) {
	w := nt.postNote(t, note.NewNote{
		OwnerId: "alice",
		Title:   "no content",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createNoteMissingContent400: Should receive a status code of 400 for the response: %v", w.Code)
	}
}

func (nt *NoteTests) createNoteLockedWithoutCode400(t *testing.T) {
	w := nt.postNote(t, note.NewNote{
		OwnerId:   "alice",
		Title:     "locked",
		Content:   "text",
		PadLocked: true,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test createNoteLockedWithoutCode400: Should receive a status code of 400 for the response: %v", w.Code)
	}
}

func (nt *NoteTests) listNotes(t *testing.T, padLockCode string) []map[string]any {
	target := "/v1/users/alice/notes"
	if padLockCode != "" {
		target += "?padLockCode=" + padLockCode
	}
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the list response: %v", w.Code)
	}

	var resp []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Should be able to unmarshal the list response: %v", err)
	}
	return resp
}

func findByTitle(notes []map[string]any, title string) map[string]any {
	for _, n := range notes {
		if n["title"] == title {
			return n
		}
	}
	return nil
}

func (nt *NoteTests) listNotesLockedWithoutCode(t *testing.T) {
	resp := nt.listNotes(t, "")

	if len(resp) != 2 {
		t.Fatalf("Test listNotesLockedWithoutCode: Should have 2 notes in the response: %v", resp)
	}
	for _, n := range resp {
		if _, leaked := n["padLockCode"]; leaked {
			t.Fatalf("Test listNotesLockedWithoutCode: padLockCode must never be serialized: %v", n)
		}
	}

	locked := findByTitle(resp, "secret note")
	if locked == nil {
		t.Fatalf("Test listNotesLockedWithoutCode: Should have the locked note in the response: %v", resp)
	}
	if locked["isLocked"] != true {
		t.Fatalf("Test listNotesLockedWithoutCode: Locked note should have isLocked true: %v", locked)
	}
	if _, present := locked["content"]; present {
		t.Fatalf("Test listNotesLockedWithoutCode: Locked note should not include content: %v", locked)
	}

	open := findByTitle(resp, "open note")
	if open == nil || open["isLocked"] != false || open["content"] != "my open text" {
		t.Fatalf("Test listNotesLockedWithoutCode: Open note should come back in full: %v", open)
	}
}

func (nt *NoteTests) listNotesWithMatchingCode(t *testing.T) {
	resp := nt.listNotes(t, "xyz")

	locked := findByTitle(resp, "secret note")
	if locked == nil || locked["isLocked"] != false || locked["content"] != "my secret text" {
		t.Fatalf("Test listNotesWithMatchingCode: Matching code should unlock the note: %v", locked)
	}
}

func (nt *NoteTests) listNotesWithWrongCode(t *testing.T) {
	resp := nt.listNotes(t, "wrong")

	locked := findByTitle(resp, "secret note")
	if locked == nil || locked["isLocked"] != true {
		t.Fatalf("Test listNotesWithWrongCode: Wrong code should keep the note locked: %v", locked)
	}
	if _, present := locked["content"]; present {
		t.Fatalf("Test listNotesWithWrongCode: Locked note should not include content: %v", locked)
	}
}

func (nt *NoteTests) getNoteGated(t *testing.T) {
	// single fetch applies the same gate as the list
	r := httptest.NewRequest(http.MethodGet, "/v1/notes/1", nil)
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test getNoteGated: Should receive a status code of 200 for the response: %v", w.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getNoteGated: Should be able to unmarshal the response: %v", err)
	}
	if resp["isLocked"] != true {
		t.Fatalf("Test getNoteGated: Single fetch without code should be locked: %v", resp)
	}
	if _, present := resp["content"]; present {
		t.Fatalf("Test getNoteGated: Single fetch without code should not include content: %v", resp)
	}

	r = httptest.NewRequest(http.MethodGet, "/v1/notes/1?padLockCode=xyz", nil)
	w = httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)

	var unlocked note.Note
	if err := json.NewDecoder(w.Body).Decode(&unlocked); err != nil {
		t.Fatalf("Test getNoteGated: Should be able to unmarshal the response: %v", err)
	}
	if unlocked.Locked || unlocked.Content != "my secret text" {
		t.Fatalf("Test getNoteGated: Single fetch with the code should unlock: %+v", unlocked)
	}
}

func (nt *NoteTests) deleteNote(t *testing.T, id, requesterId string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"requesterId":%q}`, requesterId)
	r := httptest.NewRequest(http.MethodDelete, "/v1/notes/"+id, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	nt.app.ServeHTTP(w, r)
	return w
}

func (nt *NoteTests) deleteNoteByStranger403(t *testing.T) {
	w := nt.deleteNote(t, "1", "bob")

	if w.Code != http.StatusForbidden {
		t.Fatalf("Test deleteNoteByStranger403: Should receive a status code of 403 for the response: %v", w.Code)
	}
	if len(nt.listNotes(t, "")) != 2 {
		t.Fatalf("Test deleteNoteByStranger403: Forbidden delete should leave the notes in place")
	}
}

func (nt *NoteTests) deleteNoteByOwner200(t *testing.T) {
	w := nt.deleteNote(t, "1", "alice")

	if w.Code != http.StatusOK {
		t.Fatalf("Test deleteNoteByOwner200: Should receive a status code of 200 for the response: %v %s", w.Code, w.Body)
	}
	if len(nt.listNotes(t, "")) != 1 {
		t.Fatalf("Test deleteNoteByOwner200: Owner delete should remove the note")
	}

	w = nt.deleteNote(t, "1", "alice")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test deleteNoteByOwner200: Deleting again should receive a 404: %v", w.Code)
	}
}
