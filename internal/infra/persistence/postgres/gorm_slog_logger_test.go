package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"studio/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	logger := newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return logger.(*gormSlogLogger), buf
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	logger, buf := newBufferedGormLogger(true)

	longSQL := "INSERT INTO gmb_locations VALUES " + strings.Repeat("(x),", 2000)
	logger.Trace(context.Background(), time.Now(), func() (string, int64) { return longSQL, 100 }, nil)

	assert.Contains(t, buf.String(), "(truncated)")
	assert.Less(t, buf.Len(), len(longSQL))
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	logger, buf := newBufferedGormLogger(false)

	logger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	logger, _ := newBufferedGormLogger(true)

	sql, params := logger.ParamsFilter(context.Background(), `UPDATE "gmb_accounts" SET "access_token"=$1`, "ya29.secret")
	assert.Contains(t, sql, "access_token")
	assert.Nil(t, params)

	_, params = logger.ParamsFilter(context.Background(), `SELECT * FROM "gmb_locations" WHERE id = $1`, "loc-1")
	assert.Equal(t, []any{"loc-1"}, params)
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	logger, buf := newBufferedGormLogger(false)

	logger.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Contains(t, buf.String(), "Slow query")
	assert.Contains(t, buf.String(), "component=gorm")
}
