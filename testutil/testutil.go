// Package testutil holds helpers shared by package tests: an in-memory
// sqlite database seeded with the sample dataset and HTTP request helpers.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Govind-619/OrderDesk/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an empty, migrated in-memory database private to the test
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		_ = config.Close(db)
	})
	return db
}

// SetupTestDB opens a seeded test database and installs it as config.DB
// for the duration of the test
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewTestDB(t)
	require.NoError(t, config.SeedSampleData(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = previous
	})
	return db
}

// Response is a decoded response envelope. Numbers are kept as json.Number
// so amounts can be compared exactly.
type Response struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// PerformRequest sends a request through handler and records the response
func PerformRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// Decode parses an enveloped JSON response whose data is an object
func Decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&resp), "body: %s", w.Body.String())
	return resp
}

// DecodeList parses an enveloped JSON response whose data is an array
func DecodeList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	var resp struct {
		Data []interface{} `json:"data"`
	}
	dec := json.NewDecoder(bytes.NewReader(w.Body.Bytes()))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&resp), "body: %s", w.Body.String())
	return resp.Data
}

// IDs extracts the given numeric field from a list of decoded objects
func IDs(t *testing.T, rows []interface{}, field string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		obj, ok := row.(map[string]interface{})
		require.True(t, ok, "row is not an object: %v", row)
		n, ok := obj[field].(json.Number)
		require.True(t, ok, "field %s is not a number: %v", field, obj[field])
		id, err := n.Int64()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}
