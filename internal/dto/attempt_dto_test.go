package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// An all-skipped sheet arrives as an empty or omitted answers array; the
// request binding must let both through so the service can score the skips.
func TestAttemptSubmitRequestBindsEmptyAnswerSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bodies := map[string]string{
		"empty array": `{"answers":[],"start_time":"2026-03-01T09:00:00Z","elapsed_seconds":5}`,
		"omitted":     `{"start_time":"2026-03-01T09:00:00Z","elapsed_seconds":5}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
			ctx.Request.Header.Set("Content-Type", "application/json")

			var req AttemptSubmitRequest
			if err := ctx.ShouldBindJSON(&req); err != nil {
				t.Fatalf("bind: %v", err)
			}
			if len(req.Answers) != 0 {
				t.Fatalf("want no answers, got %d", len(req.Answers))
			}
		})
	}

	// start_time stays mandatory
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/", strings.NewReader(`{"answers":[]}`))
	ctx.Request.Header.Set("Content-Type", "application/json")
	var req AttemptSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err == nil {
		t.Fatal("binding without start_time must fail")
	}
}
