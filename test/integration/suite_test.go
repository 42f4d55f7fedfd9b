//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	baseURL      string
	client       *http.Client
	local        *journalServer
	localDir     string
	response     *http.Response
	responseBody []byte

	// ids remembers entries created by title so later steps can refer to them.
	ids map[string]int64
}

func newTestContext() *testContext {
	return &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		ids:    make(map[string]int64),
	}
}

// start points the scenario at BASE_URL, or boots a private in-process
// journal on an empty database.
func (tc *testContext) start() error {
	if url := os.Getenv("BASE_URL"); url != "" {
		tc.baseURL = url
		return nil
	}

	dir, err := os.MkdirTemp("", "journal-bdd-*")
	if err != nil {
		return err
	}

	srv, err := startJournal(dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return err
	}

	tc.local = srv
	tc.localDir = dir
	tc.baseURL = srv.URL

	return nil
}

// reset clears response state and stops the private journal.
func (tc *testContext) reset() {
	if tc.response != nil && tc.response.Body != nil {
		tc.response.Body.Close()
	}

	if tc.local != nil {
		tc.local.Close()
		tc.local = nil
		_ = os.RemoveAll(tc.localDir)
	}

	tc.response = nil
	tc.responseBody = nil
	tc.ids = make(map[string]int64)
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := newTestContext()

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, tc.start()
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^I request GET "([^"]*)"$`, tc.iRequestGET)
	ctx.Step(`^I request (POST|PUT) "([^"]*)" with:$`, tc.iRequestWithBody)
	ctx.Step(`^I request DELETE "([^"]*)"$`, tc.iRequestDELETE)
	ctx.Step(`^an entry "([^"]*)" tagged "([^"]*)"$`, tc.anEntryTagged)
	ctx.Step(`^I request (GET|DELETE) the entry "([^"]*)"$`, tc.iRequestTheEntry)
	ctx.Step(`^I rename the entry "([^"]*)" to "([^"]*)"$`, tc.iRenameTheEntry)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the response should not contain "([^"]*)"$`, tc.theResponseShouldNotContain)
	ctx.Step(`^the response should be a list of (\d+) items?$`, tc.theResponseShouldBeAListOf)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	ctx.Step(`^the entry "([^"]*)" should have tags "([^"]*)"$`, tc.theEntryShouldHaveTags)
}

func (tc *testContext) theServiceIsRunning() error {
	if err := tc.do(http.MethodGet, "/-/live", nil); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", tc.response.StatusCode)
	}

	return nil
}

func (tc *testContext) do(method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tc.response != nil {
		tc.response.Body.Close()
	}

	tc.response, err = tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	tc.responseBody, err = io.ReadAll(tc.response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (tc *testContext) iRequestGET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *testContext) iRequestDELETE(path string) error {
	return tc.do(http.MethodDelete, path, nil)
}

func (tc *testContext) iRequestWithBody(method, path string, body *godog.DocString) error {
	return tc.do(method, path, []byte(body.Content))
}

func (tc *testContext) anEntryTagged(title, tags string) error {
	payload, err := json.Marshal(map[string]any{
		"title":   title,
		"content": "notes about " + title,
		"tags":    splitList(tags),
	})
	if err != nil {
		return err
	}

	if err := tc.do(http.MethodPost, "/api/entries", payload); err != nil {
		return err
	}

	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("creating %q: status %d: %s", title, tc.response.StatusCode, tc.responseBody)
	}

	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return err
	}

	tc.ids[title] = created.ID

	return nil
}

func (tc *testContext) entryPath(title string) (string, error) {
	id, ok := tc.ids[title]
	if !ok {
		return "", fmt.Errorf("no entry %q was created in this scenario", title)
	}

	return fmt.Sprintf("/api/entries/%d", id), nil
}

func (tc *testContext) iRequestTheEntry(method, title string) error {
	path, err := tc.entryPath(title)
	if err != nil {
		return err
	}

	return tc.do(method, path, nil)
}

func (tc *testContext) iRenameTheEntry(title, newTitle string) error {
	path, err := tc.entryPath(title)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"title": newTitle, "content": "renamed"})
	if err != nil {
		return err
	}

	return tc.do(http.MethodPut, path, payload)
}

func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return errors.New("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

func (tc *testContext) theResponseShouldContain(text string) error {
	if !strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseShouldNotContain(text string) error {
	if strings.Contains(string(tc.responseBody), text) {
		return fmt.Errorf("response body unexpectedly contains %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theResponseShouldBeAListOf(n int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %w", err)
	}

	if len(items) != n {
		return fmt.Errorf("expected %d items, got %d.\nBody: %s", n, len(items), tc.responseBody)
	}

	return nil
}

// theResponseFieldShouldBe compares a dotted path into a JSON object with
// the formatted value, e.g. "error.code" or "currentStreak".
func (tc *testContext) theResponseFieldShouldBe(path, expected string) error {
	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}

	for _, key := range strings.Split(path, ".") {
		obj, ok := doc.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q: %v is not an object", key, doc)
		}

		doc, ok = obj[key]
		if !ok {
			return fmt.Errorf("field %q missing.\nBody: %s", path, tc.responseBody)
		}
	}

	if got := fmt.Sprint(doc); got != expected {
		return fmt.Errorf("field %q: expected %q, got %q", path, expected, got)
	}

	return nil
}

func (tc *testContext) theEntryShouldHaveTags(title, tags string) error {
	if err := tc.iRequestTheEntry(http.MethodGet, title); err != nil {
		return err
	}

	var entry struct {
		Tags []struct {
			Name string `json:"name"`
		} `json:"tags"`
	}
	if err := json.Unmarshal(tc.responseBody, &entry); err != nil {
		return err
	}

	got := make([]string, 0, len(entry.Tags))
	for _, t := range entry.Tags {
		got = append(got, t.Name)
	}

	if want := splitList(tags); strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("entry %q: expected tags %v, got %v", title, want, got)
	}

	return nil
}

// splitList turns "a, b" into ["a" "b"]; an empty string is an empty list.
func splitList(s string) []string {
	out := []string{}

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
