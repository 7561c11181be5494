// Health probe for the note service, meant to back a container
// HEALTHCHECK. Exit code 0 means /healthz answered 200 with a healthy
// body; each failure mode gets its own code so the orchestrator log shows
// which step broke.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort  = 8080
	probeTimeout = time.Second
)

const (
	exitRequestFailed = iota + 2
	exitBadHTTPStatus
	exitBadBody
	exitUnhealthy
)

func main() {
	os.Exit(run())
}

func run() int {
	port := servicePort()
	url := fmt.Sprintf("http://localhost:%d/healthz", port)

	client := &http.Client{Timeout: probeTimeout}
	resp, err := client.Get(url)
	if err != nil {
		log.Printf("request failed: %v", err)
		return exitRequestFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("unexpected HTTP status %d", resp.StatusCode)
		return exitBadHTTPStatus
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("decode error: %v", err)
		return exitBadBody
	}
	if body.Status != "" && body.Status != "ok" {
		log.Printf("service reported unhealthy: %q", body.Status)
		return exitUnhealthy
	}

	log.Printf("service healthy on port %d", port)
	return 0
}

// servicePort reads APP_PORT, the same key the server itself listens on.
func servicePort() int {
	v := os.Getenv("APP_PORT")
	if v == "" {
		return defaultPort
	}
	p, err := strconv.Atoi(v)
	if err != nil || p <= 0 || p > 65535 {
		return defaultPort
	}
	return p
}
