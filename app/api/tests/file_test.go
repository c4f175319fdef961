package tests

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/codedpad/pad-api/app/api/handlers"
	"github.com/codedpad/pad-api/platform/env"
	"github.com/codedpad/pad-api/platform/logger"
	"github.com/codedpad/pad-api/sys"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gocloud.dev/blob/memblob"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/codedpad/pad-api/persistence/v1/schema"
	_ "github.com/proullon/ramsql/driver"
)

type FileTests struct {
	app http.Handler
}

func TestFile(t *testing.T) {
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
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Storage.VerifyAttempts = 3
	sys.Configs.Storage.VerifyDelay = env.DurationDefault(log, "STORAGE_VERIFY_DELAY", "10ms")
	sys.Configs.Upload.MaxBytes = 1 << 20
	sys.Configs.Upload.AllowedTypes = map[string]bool{
		"text/plain":      true,
		"application/pdf": true,
		"image/png":       true,
	}

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// ramsql in place of mysql
	var db *sql.DB
	if err := func() error {
		ramDb, err := sql.Open("ramsql", "PadFileTest")
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

	// memblob in place of the blob bucket
	bucket := memblob.OpenBucket(nil)
	defer func() {
		_ = bucket.Close()
	}()
	sys.R.Blob = bucket

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

	tests := FileTests{
		engine,
	}

	// =======================================================================================================
	// Run tests

	tests.uploadAndDownloadRoundtrip(t)
	tests.uploadTooLarge413(t)
	tests.uploadBadType415(t)
	tests.uploadLockedWithoutCode400(t)
	tests.listFilesGated(t)
	tests.saveFileIdempotent(t)
	tests.savedFileShowsUpInList(t)
	tests.downloadLockedFile(t)
	tests.deleteFileByStranger403(t)
	tests.deleteFileByOwner200(t)
}

func (ft *FileTests) upload(t *testing.T, ownerId, filename, contentType string, content []byte, padLocked bool, padLockCode string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create multipart file part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write multipart file part: %v", err)
	}

	_ = mw.WriteField("ownerId", ownerId)
	if padLocked {
		_ = mw.WriteField("padLocked", "true")
		_ = mw.WriteField("padLockCode", padLockCode)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/v1/files", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	ft.app.ServeHTTP(w, r)
	return w
}

func (ft *FileTests) listFiles(t *testing.T, userId, padLockCode string) []map[string]any {
	target := "/v1/users/" + userId + "/files"
	if padLockCode != "" {
		target += "?padLockCode=" + padLockCode
	}
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	ft.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Should receive a status code of 200 for the list response: %v", w.Code)
	}

	var resp []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Should be able to unmarshal the list response: %v", err)
	}
	return resp
}

func (ft *FileTests) download(t *testing.T, id, padLockCode string) *httptest.ResponseRecorder {
	target := "/v1/files/" + id + "/download"
	if padLockCode != "" {
		target += "?padLockCode=" + padLockCode
	}
	r := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	ft.app.ServeHTTP(w, r)
	return w
}

func (ft *FileTests) uploadAndDownloadRoundtrip(t *testing.T) {
	content := []byte("pad file payload for the roundtrip check")

	w := ft.upload(t, "alice", "pad.txt", "text/plain", content, false, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Test uploadAndDownloadRoundtrip: Should receive a status code of 201 for the response: %v %s", w.Code, w.Body)
	}

	dl := ft.download(t, "1", "")
	if dl.Code != http.StatusOK {
		t.Fatalf("Test uploadAndDownloadRoundtrip: Should receive a status code of 200 for the download: %v %s", dl.Code, dl.Body)
	}
	body, err := io.ReadAll(dl.Body)
	if err != nil {
		t.Fatalf("Test uploadAndDownloadRoundtrip: Should be able to read the download body: %v", err)
	}
	if len(body) != len(content) || sha256.Sum256(body) != sha256.Sum256(content) {
		t.Fatalf("Test uploadAndDownloadRoundtrip: Downloaded bytes should match the upload exactly")
	}
	if ct := dl.Header().Get("Content-Type"); ct != "text/plain" {
		t.Fatalf("Test uploadAndDownloadRoundtrip: Should carry the stored content type: %v", ct)
	}
}

func (ft *FileTests) uploadTooLarge413(t *testing.T) {
	big := make([]byte, sys.Configs.Upload.MaxBytes+10)

	w := ft.upload(t, "alice", "big.txt", "text/plain", big, false, "")
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Test uploadTooLarge413: Should receive a status code of 413 for the response: %v", w.Code)
	}

	for _, f := range ft.listFiles(t, "alice", "") {
		if f["filename"] == "big.txt" {
			t.Fatalf("Test uploadTooLarge413: Rejected upload must not leave a metadata row: %v", f)
		}
	}
}

func (ft *FileTests) uploadBadType415(t *testing.T) {
	w := ft.upload(t, "alice", "app.bin", "application/octet-stream", []byte{0x1, 0x2}, false, "")
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("Test uploadBadType415: Should receive a status code of 415 for the response: %v", w.Code)
	}
}

func (ft *FileTests) uploadLockedWithoutCode400(t *testing.T) {
	w := ft.upload(t, "alice", "locked.txt", "text/plain", []byte("locked"), true, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test uploadLockedWithoutCode400: Should receive a status code of 400 for the response: %v", w.Code)
	}
}

func (ft *FileTests) listFilesGated(t *testing.T) {
	w := ft.upload(t, "alice", "secret.pdf", "application/pdf", []byte("%PDF-1.4 secret"), true, "xyz")
	if w.Code != http.StatusCreated {
		t.Fatalf("Test listFilesGated: Should receive a status code of 201 for the response: %v %s", w.Code, w.Body)
	}

	var lockedView map[string]any
	for _, f := range ft.listFiles(t, "alice", "") {
		if _, leaked := f["padLockCode"]; leaked {
			t.Fatalf("Test listFilesGated: padLockCode must never be serialized: %v", f)
		}
		if _, leaked := f["blobRef"]; leaked {
			t.Fatalf("Test listFilesGated: blobRef must never be serialized: %v", f)
		}
		if f["isLocked"] == true {
			lockedView = f
		}
	}
	if lockedView == nil {
		t.Fatalf("Test listFilesGated: Should have the locked file in the response")
	}
	if _, present := lockedView["filename"]; present {
		t.Fatalf("Test listFilesGated: Locked file should not include filename: %v", lockedView)
	}

	unlocked := false
	for _, f := range ft.listFiles(t, "alice", "xyz") {
		if f["filename"] == "secret.pdf" && f["isLocked"] == false {
			unlocked = true
		}
	}
	if !unlocked {
		t.Fatalf("Test listFilesGated: Matching code should unlock the file in the list")
	}
}

func (ft *FileTests) saveFile(t *testing.T, id, userId string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"userId":%q}`, userId)
	r := httptest.NewRequest(http.MethodPost, "/v1/files/"+id+"/save", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	ft.app.ServeHTTP(w, r)
	return w
}

func (ft *FileTests) saveFileIdempotent(t *testing.T) {
	w := ft.saveFile(t, "1", "bob")
	if w.Code != http.StatusOK {
		t.Fatalf("Test saveFileIdempotent: Should receive a status code of 200 for the response: %v %s", w.Code, w.Body)
	}

	w = ft.saveFile(t, "1", "bob")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test saveFileIdempotent: Second save should receive a 400: %v", w.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test saveFileIdempotent: Should be able to unmarshal the response: %v", err)
	}
	if resp["code"] != "alreadySaved" {
		t.Fatalf("Test saveFileIdempotent: Second save should report alreadySaved: %v", resp)
	}

	w = ft.saveFile(t, "99", "bob")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Test saveFileIdempotent: Saving an unknown file should receive a 404: %v", w.Code)
	}
}

func (ft *FileTests) savedFileShowsUpInList(t *testing.T) {
	count := 0
	for _, f := range ft.listFiles(t, "bob", "") {
		if f["id"] == float64(1) {
			count++
			if f["ownerId"] != "alice" {
				t.Fatalf("Test savedFileShowsUpInList: Saved file keeps its owner: %v", f)
			}
		}
	}
	if count != 1 {
		t.Fatalf("Test savedFileShowsUpInList: Bob's list should include the saved file exactly once: %d", count)
	}

	// the owner sees who saved the file
	for _, f := range ft.listFiles(t, "alice", "") {
		if f["id"] == float64(1) {
			saves, ok := f["savedBy"].([]any)
			if !ok || len(saves) != 1 {
				t.Fatalf("Test savedFileShowsUpInList: Alice should see one savedBy entry: %v", f)
			}
			entry := saves[0].(map[string]any)
			if entry["userId"] != "bob" {
				t.Fatalf("Test savedFileShowsUpInList: savedBy entry should name bob: %v", entry)
			}
		}
	}
}

func (ft *FileTests) downloadLockedFile(t *testing.T) {
	// file 2 is the pad locked secret.pdf
	w := ft.download(t, "2", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("Test downloadLockedFile: Download without the code should receive a 403: %v", w.Code)
	}

	w = ft.download(t, "2", "wrong")
	if w.Code != http.StatusForbidden {
		t.Fatalf("Test downloadLockedFile: Download with a wrong code should receive a 403: %v", w.Code)
	}

	w = ft.download(t, "2", "xyz")
	if w.Code != http.StatusOK {
		t.Fatalf("Test downloadLockedFile: Download with the code should receive a 200: %v %s", w.Code, w.Body)
	}
}

func (ft *FileTests) deleteFile(t *testing.T, id, requesterId, padLockCode string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"requesterId":%q,"padLockCode":%q}`, requesterId, padLockCode)
	r := httptest.NewRequest(http.MethodDelete, "/v1/files/"+id, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	ft.app.ServeHTTP(w, r)
	return w
}

func (ft *FileTests) deleteFileByStranger403(t *testing.T) {
	w := ft.deleteFile(t, "1", "bob", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("Test deleteFileByStranger403: Should receive a status code of 403 for the response: %v", w.Code)
	}

	if dl := ft.download(t, "1", ""); dl.Code != http.StatusOK {
		t.Fatalf("Test deleteFileByStranger403: Forbidden delete should leave the blob and row intact: %v", dl.Code)
	}
}

func (ft *FileTests) deleteFileByOwner200(t *testing.T) {
	w := ft.deleteFile(t, "1", "alice", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Test deleteFileByOwner200: Should receive a status code of 200 for the response: %v %s", w.Code, w.Body)
	}

	if dl := ft.download(t, "1", ""); dl.Code != http.StatusNotFound {
		t.Fatalf("Test deleteFileByOwner200: Download after delete should receive a 404: %v", dl.Code)
	}

	// the pad locked file needs the matching code even for its owner
	w = ft.deleteFile(t, "2", "alice", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("Test deleteFileByOwner200: Owner without the code should receive a 403: %v", w.Code)
	}
	w = ft.deleteFile(t, "2", "alice", "xyz")
	if w.Code != http.StatusOK {
		t.Fatalf("Test deleteFileByOwner200: Owner with the code should receive a 200: %v %s", w.Code, w.Body)
	}
}
