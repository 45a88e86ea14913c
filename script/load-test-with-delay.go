package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// OrderRequest is the body of POST /api/orders
type OrderRequest struct {
	UserID   uint64  `json:"user_id"`
	CryptoID uint64  `json:"crypto_id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Price    float64 `json:"price"`
}

// TransactionRequest is the body of POST /api/transactions
type TransactionRequest struct {
	FromUserID uint64  `json:"from_user_id"`
	ToUserID   uint64  `json:"to_user_id"`
	CryptoID   uint64  `json:"crypto_id"`
	Amount     float64 `json:"amount"`
	TxType     string  `json:"tx_type"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Market is a cryptocurrency with a reference price to quote around
type Market struct {
	CryptoID uint64
	Symbol   string
	Price    float64
}

// Scenario builds one request against the exchange
type Scenario struct {
	Name  string
	Build func(f *gofakeit.Faker, users []uint64, m Market) (method, path string, body any)
}

var markets = []Market{
	{1, "BTC", 45000},
	{2, "ETH", 3200.50},
	{3, "ADA", 0.65},
	{4, "DOT", 25.30},
}

var scenarios = []Scenario{
	{"Place BUY", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		return http.MethodPost, "/api/orders", OrderRequest{
			UserID:   pick(f, users),
			CryptoID: m.CryptoID,
			Type:     "BUY",
			Amount:   round(f.Float64Range(0.01, 2), 8),
			Price:    round(m.Price*f.Float64Range(0.95, 1.0), 2),
		}
	}},
	{"Place SELL", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		return http.MethodPost, "/api/orders", OrderRequest{
			UserID:   pick(f, users),
			CryptoID: m.CryptoID,
			Type:     "SELL",
			Amount:   round(f.Float64Range(0.01, 2), 8),
			Price:    round(m.Price*f.Float64Range(1.0, 1.05), 2),
		}
	}},
	{"Transfer", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		from := pick(f, users)
		to := pick(f, users)
		for len(users) > 1 && to == from {
			to = pick(f, users)
		}
		return http.MethodPost, "/api/transactions", TransactionRequest{
			FromUserID: from,
			ToUserID:   to,
			CryptoID:   m.CryptoID,
			Amount:     round(f.Float64Range(0.001, 1), 8),
			TxType:     f.RandomString([]string{"TRANSFER", "TRADE"}),
		}
	}},
	{"Market data", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		return http.MethodGet, fmt.Sprintf("/api/orders/market/%d", m.CryptoID), nil
	}},
	{"Volume stats", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		return http.MethodGet, fmt.Sprintf("/api/transactions/%d/volume?days=%d", m.CryptoID, f.IntRange(1, 30)), nil
	}},
	{"Wallet value", func(f *gofakeit.Faker, users []uint64, m Market) (string, string, any) {
		return http.MethodGet, fmt.Sprintf("/api/users/%d/wallet-value", pick(f, users)), nil
	}},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3,4", "Comma-separated list of user IDs to trade as")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	seed := flag.Uint64("seed", 0, "Seed for generated payloads, 0 for random")
	flag.Parse()

	var userIDs []uint64
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []uint64{1}
	}

	fmt.Printf("Load testing exchange as %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Scenarios: %d across %d markets\n", len(scenarios), len(markets))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerSeed := uint64(0)
			if *seed != 0 {
				workerSeed = *seed + uint64(workerID)
			}
			worker(gofakeit.New(workerSeed), *baseURL, *delayMs, userIDs, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario]++
	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func worker(f *gofakeit.Faker, baseURL string, delayMs int, userIDs []uint64, jobs <-chan int, results chan<- TestResult) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[f.IntRange(0, len(scenarios)-1)]
		market := markets[f.IntRange(0, len(markets)-1)]
		method, path, body := scenario.Build(f, userIDs, market)

		result := TestResult{Scenario: scenario.Name}

		var payload *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				result.Error = err
				results <- result
				continue
			}
			payload = bytes.NewReader(raw)
		} else {
			payload = bytes.NewReader(nil)
		}

		req, err := http.NewRequest(method, baseURL+path, payload)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", f.UUID())

		start := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(start)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Name, resp.StatusCode)
			}
			_ = resp.Body.Close()
		}

		results <- result
	}
}

func pick(f *gofakeit.Faker, ids []uint64) uint64 {
	return ids[f.IntRange(0, len(ids)-1)]
}

func round(v float64, places int) float64 {
	scale := 1.0
	for i := 0; i < places; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, s := range scenarios {
		if count := stats.ScenarioStats[s.Name]; count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", s.Name, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
