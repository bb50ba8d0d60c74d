// Package benchmark is a load harness for a running gateway instance. It
// fires a fixed number of requests at one endpoint through a bounded worker
// pool and reports latency and status-code distribution.
package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Runner drives one benchmark against a gateway base URL
type Runner struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Client      *http.Client
}

// Summary aggregates the outcome of one benchmark run
type Summary struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"totalRequests"`
	SuccessCount   int           `json:"successCount"`
	FailureCount   int           `json:"failureCount"`
	TotalTime      time.Duration `json:"totalTime"`
	AverageTime    time.Duration `json:"averageTime"`
	MinTime        time.Duration `json:"minTime"`
	MaxTime        time.Duration `json:"maxTime"`
	RequestsPerSec float64       `json:"requestsPerSec"`
	StatusCodes    map[int]int   `json:"statusCodes"`
	Errors         []string      `json:"errors"`
}

type sample struct {
	duration   time.Duration
	statusCode int
	err        error
}

// NewRunner creates a benchmark runner for a gateway base URL
func NewRunner(baseURL string, concurrency, requests int, authToken string) *Runner {
	return &Runner{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Get benchmarks a GET endpoint
func (r *Runner) Get(path string) *Summary {
	return r.run(http.MethodGet, r.BaseURL+path, nil)
}

// Post benchmarks a POST endpoint with a JSON payload
func (r *Runner) Post(path string, payload interface{}) *Summary {
	return r.withBody(http.MethodPost, path, payload)
}

// Put benchmarks a PUT endpoint with a JSON payload
func (r *Runner) Put(path string, payload interface{}) *Summary {
	return r.withBody(http.MethodPut, path, payload)
}

func (r *Runner) withBody(method, path string, payload interface{}) *Summary {
	url := r.BaseURL + path
	data, err := json.Marshal(payload)
	if err != nil {
		return &Summary{
			URL:    url,
			Method: method,
			Errors: []string{fmt.Sprintf("payload encoding failed: %v", err)},
		}
	}
	return r.run(method, url, data)
}

// run fires the configured number of requests through a bounded worker pool
func (r *Runner) run(method, url string, payload []byte) *Summary {
	samples := make(chan sample, r.Requests)
	var wg sync.WaitGroup
	limiter := make(chan struct{}, r.Concurrency)

	startTime := time.Now()

	for i := 0; i < r.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter <- struct{}{}
			defer func() { <-limiter }()

			start := time.Now()
			req, err := http.NewRequest(method, url, bytes.NewReader(payload))
			if err != nil {
				samples <- sample{err: err}
				return
			}

			req.Header.Set("Content-Type", "application/json")
			if r.AuthToken != "" {
				req.Header.Set("Authorization", "Bearer "+r.AuthToken)
			}

			resp, err := r.Client.Do(req)
			if err != nil {
				samples <- sample{err: err}
				return
			}
			resp.Body.Close()

			samples <- sample{
				duration:   time.Since(start),
				statusCode: resp.StatusCode,
			}
		}()
	}

	go func() {
		wg.Wait()
		close(samples)
	}()

	var minTime time.Duration = 1<<63 - 1
	var maxTime time.Duration
	var totalTime time.Duration
	successCount := 0
	failureCount := 0
	statusCodes := make(map[int]int)
	var errs []string

	for s := range samples {
		if s.err != nil {
			failureCount++
			errs = append(errs, s.err.Error())
			continue
		}

		totalTime += s.duration
		if s.duration < minTime {
			minTime = s.duration
		}
		if s.duration > maxTime {
			maxTime = s.duration
		}

		statusCodes[s.statusCode]++
		if s.statusCode >= 200 && s.statusCode < 300 {
			successCount++
		} else {
			failureCount++
		}
	}

	totalElapsed := time.Since(startTime)
	averageTime := time.Duration(0)
	if successCount+failureCount > 0 {
		averageTime = totalTime / time.Duration(successCount+failureCount)
	}

	return &Summary{
		URL:            url,
		Method:         method,
		Concurrency:    r.Concurrency,
		TotalRequests:  r.Requests,
		SuccessCount:   successCount,
		FailureCount:   failureCount,
		TotalTime:      totalElapsed,
		AverageTime:    averageTime,
		MinTime:        minTime,
		MaxTime:        maxTime,
		RequestsPerSec: float64(r.Requests) / totalElapsed.Seconds(),
		StatusCodes:    statusCodes,
		Errors:         errs,
	}
}

// Print writes a human-readable run summary to stdout
func (s *Summary) Print() {
	fmt.Printf("benchmark %s %s\n", s.Method, s.URL)
	fmt.Printf("  concurrency:  %d\n", s.Concurrency)
	fmt.Printf("  requests:     %d (ok %d, failed %d)\n", s.TotalRequests, s.SuccessCount, s.FailureCount)
	fmt.Printf("  total:        %s\n", s.TotalTime)
	fmt.Printf("  avg/min/max:  %s / %s / %s\n", s.AverageTime, s.MinTime, s.MaxTime)
	fmt.Printf("  req/sec:      %.2f\n", s.RequestsPerSec)
	for code, count := range s.StatusCodes {
		fmt.Printf("  status %d:   %d\n", code, count)
	}
	for i, err := range s.Errors {
		if i >= 5 {
			fmt.Printf("  ... %d more errors\n", len(s.Errors)-5)
			break
		}
		fmt.Printf("  error: %s\n", err)
	}
}
