// cmd/seed populates a running note service with fake notes so the CLI has
// something to show during development.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	baseURL = flag.String("url", env("SERVER_URL", "http://localhost:8080"), "Note service base URL")
	user    = flag.String("user", env("NOTES_USER", "demo@example.com"), "User identity")
	nNotes  = flag.Int("n", envInt("COUNT", 25), "How many notes to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func postJSON(path string, body any, identity string) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, *baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", identity)
	return http.DefaultClient.Do(req)
}

func drain(body io.ReadCloser) []byte {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return data
}

func fakeNote() map[string]any {
	tags := make([]string, gofakeit.Number(0, 3))
	for i := range tags {
		tags[i] = gofakeit.BuzzWord()
	}
	return map[string]any{
		"title":   gofakeit.Sentence(gofakeit.Number(2, 5)),
		"content": gofakeit.Paragraph(1, gofakeit.Number(1, 3), gofakeit.Number(5, 12), " "),
		"tags":    tags,
	}
}

func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	fmt.Printf("Seeding %d notes for %s on %s\n", *nNotes, *user, *baseURL)

	created := 0
	for i := 0; i < *nNotes; i++ {
		resp, err := postJSON("/api/note/add", fakeNote(), *user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
			os.Exit(1)
		}
		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		raw := drain(resp.Body)
		if err := json.Unmarshal(raw, &env); err != nil || !env.Success {
			fmt.Fprintf(os.Stderr, "create rejected: %s\n", raw)
			os.Exit(1)
		}
		created++
	}

	fmt.Printf("Done, created %d notes\n", created)
}
