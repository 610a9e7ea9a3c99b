package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"integration-audit/internal/cli"
	"integration-audit/internal/slack/slacktest"
)

// ### Start - fixed configs (no change)
// These values define deterministic history generation and must match expected results.
const (
	serviceCount       = 30 // distinct service ids
	appCount           = 20 // distinct app ids
	eventsPerID        = 6  // log entries per integration
	unclassifiedCount  = 7  // entries with neither service_id nor app_id
	entriesPerPage     = 25
	email              = "jane@example.com"
	userID             = "U0E2E"
	firstDateUnix      = 1392163200
	dateStepSeconds    = 3600
	removedEveryNthID  = 3 // every 3rd integration ends removed
	disabledEveryNthID = 5 // every 5th (not already removed) ends disabled
)

var (
	serviceTypes = []string{"RSS", "Jira", "Incoming WebHooks"}
	appTypes     = []string{"Giphy", "Google Drive"}
	channels     = []string{"C0GENERAL", "C0RANDOM", ""}
)

// ### End - fixed configs

type expected struct {
	entries      int
	fullRows     int
	summaryRows  int
	shouldCheck  int
	unclassified int
}

// main runs the e2e scenario: 001_paginated_history_export
//
// This scenario drives the command end to end against an in-process fake of the Slack Web API.
// It spreads a deterministic, shuffled integration history over many pages and exports it in all
// three formats.
//
// What it tests:
//   - Pagination over team.integrationLogs until the reported page count is reached
//   - users.lookupByEmail and team.info resolution
//   - Grouping by service_id / app_id with date ordering inside each integration
//   - Full and summary CSV rendering, including should_check and channel links
//   - Raw export keeps every entry unmodified, unclassified ones included
//
// Expected results:
//   - raw: one JSON element per generated entry
//   - csv-full: one row per classified entry, dates ascending per integration
//   - csv-summary: one row per integration, should_check false for removed/disabled
func main() {
	outputDir := ".tmp/e2e-output" // output directory relative to project root
	wantCleanOutput := true        // remove outputDir before running

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	outputPath := filepath.Join(projectRoot, outputDir)

	if wantCleanOutput {
		fmt.Printf("Cleaning output directory: %s\n", outputPath)
		if err := os.RemoveAll(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean output directory: %v\n", err)
		}
		fmt.Println()
	}

	entries, want := generateHistory()
	pages := paginate(entries)

	server := slacktest.NewServer()
	defer server.Close()
	server.Users[email] = userID
	server.LogPages[userID] = pages

	fmt.Println("Starting e2e scenario: 001_paginated_history_export")
	fmt.Printf("API_URL: %s\n", server.URL)
	fmt.Printf("TOTAL_ENTRIES: %d\n", want.entries)
	fmt.Printf("PAGES: %d\n", len(pages))
	fmt.Printf("OUTPUT_PATH: %s\n", outputPath)
	fmt.Println()

	var failures []string
	for _, format := range []string{"raw", "csv-full", "csv-summary"} {
		savePath := filepath.Join(outputPath, "audit-"+format+extension(format))
		code := cli.Execute(context.Background(),
			[]string{email, server.Token, savePath, "--format", format, "--api-url", server.URL, "--log-level", "warn"},
			os.Stdout, os.Stderr)
		if code != 0 {
			failures = append(failures, fmt.Sprintf("%s: exit status %d", format, code))
			continue
		}
		if err := verify(format, savePath, want); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", format, err))
			continue
		}
		fmt.Printf("%s export verified (%s)\n", format, savePath)
	}

	fmt.Println()
	if n := len(server.Requests("team.integrationLogs")); n != 3*len(pages) {
		failures = append(failures, fmt.Sprintf("expected %d page requests, got %d", 3*len(pages), n))
	}

	if len(failures) > 0 {
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", f)
		}
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Entries: %d\n", want.entries)
	fmt.Printf("Integrations: %d\n", want.summaryRows)
	fmt.Printf("Should check: %d\n", want.shouldCheck)
	fmt.Printf("Unclassified: %d\n", want.unclassified)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from inside the project")
}

// generateHistory builds the log entries in a scrambled but deterministic order.
func generateHistory() ([]map[string]any, expected) {
	var entries []map[string]any
	want := expected{}

	addIntegration := func(idKey, typeKey, id, integrationType string, index int) {
		lastChange := "updated"
		switch {
		case index%removedEveryNthID == 0:
			lastChange = "removed"
		case index%disabledEveryNthID == 0:
			lastChange = "disabled"
		default:
			want.shouldCheck++
		}

		for event := 0; event < eventsPerID; event++ {
			changeType := "updated"
			switch event {
			case 0:
				changeType = "added"
			case eventsPerID - 1:
				changeType = lastChange
			}
			entry := map[string]any{
				idKey:         id,
				typeKey:       integrationType,
				"change_type": changeType,
				"date":        strconv.Itoa(firstDateUnix + (index*eventsPerID+event)*dateStepSeconds),
				"user_id":     userID,
			}
			if channel := channels[(index+event)%len(channels)]; channel != "" {
				entry["channel"] = channel
			}
			entries = append(entries, entry)
		}
		want.summaryRows++
		want.fullRows += eventsPerID
	}

	for i := 0; i < serviceCount; i++ {
		addIntegration("service_id", "service_type", fmt.Sprintf("S%04d", i), serviceTypes[i%len(serviceTypes)], i)
	}
	for i := 0; i < appCount; i++ {
		addIntegration("app_id", "app_type", fmt.Sprintf("A%04d", i), appTypes[i%len(appTypes)], serviceCount+i)
	}
	for i := 0; i < unclassifiedCount; i++ {
		entries = append(entries, map[string]any{
			"user_id":     userID,
			"change_type": "added",
			"reason":      fmt.Sprintf("orphan-%d", i),
			"date":        strconv.Itoa(firstDateUnix + i),
		})
	}
	want.unclassified = unclassifiedCount
	want.entries = len(entries)

	// Stride shuffle so that every integration's entries land on several pages out of order.
	stride := 7
	for gcd(stride, len(entries)) != 1 {
		stride++
	}
	shuffled := make([]map[string]any, len(entries))
	for i := range entries {
		shuffled[(i*stride)%len(entries)] = entries[i]
	}
	return shuffled, want
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func paginate(entries []map[string]any) []string {
	var pages []string
	for start := 0; start < len(entries); start += entriesPerPage {
		end := min(start+entriesPerPage, len(entries))
		data, err := json.Marshal(entries[start:end])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal page: %v\n", err)
			os.Exit(1)
		}
		pages = append(pages, string(data))
	}
	return pages
}

func extension(format string) string {
	if format == "raw" {
		return ".json"
	}
	return ".csv"
}

func verify(format, path string, want expected) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if format == "raw" {
		var entries []json.RawMessage
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("invalid json: %w", err)
		}
		if len(entries) != want.entries {
			return fmt.Errorf("expected %d entries, got %d", want.entries, len(entries))
		}
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("invalid csv: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("missing header")
	}
	body := rows[1:]

	switch format {
	case "csv-full":
		if len(body) != want.fullRows {
			return fmt.Errorf("expected %d rows, got %d", want.fullRows, len(body))
		}
		for i := 1; i < len(body); i++ {
			if body[i][0] != body[i-1][0] {
				continue
			}
			prev, _ := strconv.Atoi(body[i-1][4])
			curr, _ := strconv.Atoi(body[i][4])
			if curr < prev {
				return fmt.Errorf("row %d: dates out of order for %s", i+1, body[i][0])
			}
		}
	case "csv-summary":
		if len(body) != want.summaryRows {
			return fmt.Errorf("expected %d rows, got %d", want.summaryRows, len(body))
		}
		shouldCheck := 0
		for _, row := range body {
			if row[0] == "true" {
				shouldCheck++
			}
		}
		if shouldCheck != want.shouldCheck {
			return fmt.Errorf("expected %d integrations to check, got %d", want.shouldCheck, shouldCheck)
		}
	}
	return nil
}
