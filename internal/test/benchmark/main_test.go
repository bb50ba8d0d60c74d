package benchmark

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// The suite targets a running gateway and is skipped unless BENCH_BASE_URL
// points at one, so it never gates the regular unit-test run.
type benchConfig struct {
	BaseURL     string
	JWTSecret   string
	Concurrency int
	Requests    int
}

var config benchConfig

func TestMain(m *testing.M) {
	config = benchConfig{
		BaseURL:     os.Getenv("BENCH_BASE_URL"),
		JWTSecret:   envOr("BENCH_JWT_SECRET", "pms-app-secret-change-in-production"),
		Concurrency: envIntOr("BENCH_CONCURRENCY", 10),
		Requests:    envIntOr("BENCH_REQUESTS", 100),
	}
	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

// newRunner mints a short-lived session token the way the gateway's
// session middleware expects and wires it into a Runner
func newRunner(t *testing.T) *Runner {
	t.Helper()
	if config.BaseURL == "" {
		t.Skip("BENCH_BASE_URL not set; benchmark needs a running gateway")
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":     "bench-user",
		"orgId":      "bench-org",
		"propertyId": "bench-property",
		"role":       "ORG_ADMIN",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(config.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}

	return NewRunner(config.BaseURL, config.Concurrency, config.Requests, token)
}

func requireHealthy(t *testing.T, s *Summary) {
	t.Helper()
	s.Print()
	if s.FailureCount > 0 {
		t.Errorf("%s %s: %d of %d requests failed",
			s.Method, s.URL, s.FailureCount, s.TotalRequests)
	}
}

func TestPingThroughput(t *testing.T) {
	runner := newRunner(t)
	requireHealthy(t, runner.Get("/ping"))
}

func TestCountriesLookupThroughput(t *testing.T) {
	runner := newRunner(t)
	// cached route: only the first request should reach the upstream
	requireHealthy(t, runner.Get("/locations/countries"))
}

func TestDashboardLoadThroughput(t *testing.T) {
	runner := newRunner(t)
	requireHealthy(t, runner.Get("/dashboard"))
}

func TestSettingsReadThroughput(t *testing.T) {
	runner := newRunner(t)
	requireHealthy(t, runner.Get("/settings/general"))
}

func TestDraftSaveThroughput(t *testing.T) {
	runner := newRunner(t)
	payload := map[string]interface{}{
		"values": map[string]interface{}{
			"name": "Benchmark Hotel",
			"city": "Bengaluru",
		},
	}
	requireHealthy(t, runner.Put("/drafts/general_settings", payload))
}
