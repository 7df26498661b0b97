package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-agent/internal/middleware"
	pkgLog "calendar-agent/pkg/log"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
	ids   []string
}

func (m *recordingLogger) record(ctx context.Context, level, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, level+" "+fmt.Sprintf(format, args...))
	m.ids = append(m.ids, pkgLog.RequestID(ctx))
}

func (m *recordingLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Info(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Infof(ctx context.Context, format string, args ...any) {
	m.record(ctx, "INFO", format, args...)
}
func (m *recordingLogger) Warn(ctx context.Context, args ...any) {}
func (m *recordingLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.record(ctx, "WARN", format, args...)
}
func (m *recordingLogger) Error(ctx context.Context, args ...any) {}
func (m *recordingLogger) Errorf(ctx context.Context, format string, args ...any) {
	m.record(ctx, "ERROR", format, args...)
}
func (m *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func setup(l pkgLog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(l)

	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, pkgLog.RequestID(c.Request.Context()))
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusBadGateway)
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("Generates an id", func(t *testing.T) {
		r := setup(&recordingLogger{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		id := w.Header().Get(middleware.HeaderRequestID)
		if id == "" {
			t.Fatal("expected generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("Reuses the caller's id", func(t *testing.T) {
		r := setup(&recordingLogger{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(middleware.HeaderRequestID, "caller-42")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.HeaderRequestID); got != "caller-42" {
			t.Errorf("expected caller-42, got %q", got)
		}
	})
}

func TestAccessLog(t *testing.T) {
	l := &recordingLogger{}
	r := setup(l)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-ok")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(l.lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %v", len(l.lines), l.lines)
	}
	if l.ids[0] != "req-ok" {
		t.Errorf("expected request id on log line, got %q", l.ids[0])
	}
	if l.lines[0][:4] != "INFO" {
		t.Errorf("expected INFO for 200, got %s", l.lines[0])
	}
	if l.lines[1][:5] != "ERROR" {
		t.Errorf("expected ERROR for 502, got %s", l.lines[1])
	}
}
