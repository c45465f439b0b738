// Command shadow_compare replays read requests against the Go API and the
// legacy Node server and reports where status codes or bodies diverge.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/service"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type server struct {
	name  string
	base  string
	token string
}

type result struct {
	Target      target
	RequestID   string
	Statuses    [2]int
	Durations   [2]time.Duration
	StatusMatch bool
	BodyMatch   bool
	Err         error
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		email       string
		password    string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:3000", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3001", "legacy API base URL")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON targets file; defaults to every resource listing")
	flag.StringVar(&email, "email", service.DemoAdminEmail, "login email used on both servers")
	flag.StringVar(&password, "password", service.DemoAdminPassword, "login password used on both servers")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	servers := [2]*server{{name: "go", base: goBase}, {name: "legacy", base: legacyBase}}
	for _, srv := range servers {
		if srv.token, err = login(client, srv.base, email, password); err != nil {
			log.Fatalf("%s login failed: %v", srv.name, err)
		}
	}

	var (
		results  []result
		breaking int
		optional int
	)
	for _, t := range targets {
		res := compare(client, servers, t)
		if res.Err != nil || !res.StatusMatch || !res.BodyMatch {
			if t.Critical {
				breaking++
			} else {
				optional++
			}
		}
		results = append(results, res)
	}

	printReport(results)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

// defaultTargets lists every resource and its CSV export; listings are critical.
func defaultTargets() []target {
	var targets []target
	for _, schema := range models.Schemas() {
		targets = append(targets,
			target{Method: http.MethodGet, Path: "/api/" + schema.Table, Critical: true},
			target{Method: http.MethodGet, Path: "/api/" + schema.Table + "/export?format=csv"},
		)
	}
	return targets
}

func loadTargets(path string) ([]target, error) {
	if path == "" {
		return defaultTargets(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func login(client *http.Client, base, email, password string) (string, error) {
	payload, err := json.Marshal(models.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	resp, err := client.Post(strings.TrimRight(base, "/")+"/api/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Token, nil
}

func compare(client *http.Client, servers [2]*server, tgt target) result {
	res := result{Target: tgt, RequestID: uuid.NewString()}

	var bodies [2][]byte
	for i, srv := range servers {
		status, body, dur, err := fetch(client, srv, tgt, res.RequestID)
		if err != nil {
			res.Err = fmt.Errorf("%s request failed: %w", srv.name, err)
			return res
		}
		res.Statuses[i] = status
		res.Durations[i] = dur
		bodies[i] = body
	}

	res.StatusMatch = res.Statuses[0] == res.Statuses[1]
	res.BodyMatch = bodiesEqual(bodies[0], bodies[1])
	return res
}

func fetch(client *http.Client, srv *server, tgt target, requestID string) (int, []byte, time.Duration, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(srv.base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+srv.token)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, err
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// bodiesEqual compares JSON documents structurally and anything else byte for
// byte after trimming. A leading UTF-8 BOM is ignored.
func bodiesEqual(a, b []byte) bool {
	a = bytes.TrimPrefix(bytes.TrimSpace(a), []byte("\xef\xbb\xbf"))
	b = bytes.TrimPrefix(bytes.TrimSpace(b), []byte("\xef\xbb\xbf"))
	if bytes.Equal(a, b) {
		return true
	}

	var aj, bj interface{}
	if json.Unmarshal(a, &aj) != nil || json.Unmarshal(b, &bj) != nil {
		return false
	}
	return reflect.DeepEqual(aj, bj)
}

func printReport(results []result) {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s (request %s)\n", status, res.Target.Method, res.Target.Path, res.RequestID)
		if res.Err != nil {
			fmt.Printf("  Error: %v\n", res.Err)
			continue
		}
		fmt.Printf("  Go: %d (%s) | Legacy: %d (%s)\n", res.Statuses[0], res.Durations[0], res.Statuses[1], res.Durations[1])
		fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
	}
}
