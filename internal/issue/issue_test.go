// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique
	ids := []Id{
		MenuFileNotFoundId,
		MenuFileInvalidId,
		CapacityExceededId,
		InvalidChoiceId,
		SelectorNotFoundId,
		SelectorFailedId,
		ShellNotFoundId,
		ConfigInvalidId,
		DispatchFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if MenuFileNotFoundId != 1 {
		t.Errorf("MenuFileNotFoundId = %d, want 1", MenuFileNotFoundId)
	}
}

func TestId_String(t *testing.T) {
	tests := []struct {
		id   Id
		want string
	}{
		{MenuFileNotFoundId, "MENUK-E001"},
		{CapacityExceededId, "MENUK-E003"},
		{DispatchFailedId, "MENUK-E009"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("Id(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(MenuFileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MenuFileNotFoundId) returned nil")
	}

	if issue.Id() != MenuFileNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), MenuFileNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(MenuFileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MenuFileNotFoundId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}

	if !strings.Contains(string(msg), "No menu file found") {
		t.Error("MarkdownMsg() should contain 'No menu file found'")
	}
}

func TestIssue_DocLinks(t *testing.T) {
	issue := Get(MenuFileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MenuFileNotFoundId) returned nil")
	}

	links := issue.DocLinks()
	if len(links) == 0 {
		t.Fatal("DocLinks() returned no links")
	}

	// Modifying the returned slice should not affect the original
	original := links[0]
	links[0] = "modified"
	newLinks := issue.DocLinks()
	if newLinks[0] != original {
		t.Error("DocLinks() should return a clone")
	}
}

func TestIssue_ExtLinks(t *testing.T) {
	issue := Get(SelectorNotFoundId)
	if issue == nil {
		t.Fatal("Get(SelectorNotFoundId) returned nil")
	}

	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("ExtLinks() returned no links")
	}

	// Modifying the returned slice should not affect the original
	original := links[0]
	links[0] = "modified"
	newLinks := issue.ExtLinks()
	if newLinks[0] != original {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	issue := Get(MenuFileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MenuFileNotFoundId) returned nil")
	}

	rendered, err := issue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if rendered == "" {
		t.Error("Render() returned empty string")
	}

	if !strings.Contains(rendered, "menu file") {
		t.Error("Render() output should contain 'menu file'")
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		wantNil  bool
		contains string
	}{
		{MenuFileNotFoundId, false, "No menu file found"},
		{MenuFileInvalidId, false, "Failed to parse menu file"},
		{CapacityExceededId, false, "Menu too large"},
		{InvalidChoiceId, false, "Cannot resolve your choice"},
		{SelectorNotFoundId, false, "Selector not found"},
		{SelectorFailedId, false, "Selector failed to start"},
		{ShellNotFoundId, false, "Shell not found"},
		{ConfigInvalidId, false, "Failed to load configuration"},
		{DispatchFailedId, false, "Command dispatch failed"},
		{Id(9999), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)

			if tt.wantNil {
				if issue != nil {
					t.Errorf("Get(%d) should return nil", tt.id)
				}
				return
			}

			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}

			if tt.contains != "" && !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain '%s'", tt.id, tt.contains)
			}
		})
	}
}

func TestValues(t *testing.T) {
	issues := Values()

	if len(issues) == 0 {
		t.Fatal("Values() returned empty slice")
	}

	expectedCount := 9 // Based on the number of predefined issues

	if len(issues) != expectedCount {
		t.Errorf("Values() returned %d issues, want %d", len(issues), expectedCount)
	}

	// Verify ordering by id
	for i := 1; i < len(issues); i++ {
		if issues[i-1].Id() >= issues[i].Id() {
			t.Errorf("Values() not sorted: id %d before id %d", issues[i-1].Id(), issues[i].Id())
		}
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	testIssue := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue\n\nThis is a test.",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if !strings.Contains(rendered, "See also") {
		t.Error("Render() with links should contain 'See also'")
	}
	if !strings.Contains(rendered, "https://docs.example.com") {
		t.Error("Render() with links should contain the doc link")
	}
	if !strings.Contains(rendered, "https://external.example.com") {
		t.Error("Render() with links should contain the ext link")
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	testIssue := &Issue{
		id:    Id(9998),
		mdMsg: "# Test Issue\n\nNo links here.",
	}

	rendered, err := testIssue.Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	issues := Values()

	for _, issue := range issues {
		if issue.MarkdownMsg() == "" {
			t.Errorf("Issue %s has empty MarkdownMsg", issue.Id())
		}
	}
}

func TestAllIssuesHaveDocLinks(t *testing.T) {
	issues := Values()

	for _, issue := range issues {
		if len(issue.DocLinks()) == 0 {
			t.Errorf("Issue %s has no doc links", issue.Id())
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	// Mock the render function for testing
	originalRender := render
	defer func() { render = originalRender }()

	render = func(in string, stylePath string) (string, error) {
		return in, nil
	}

	issues := Values()

	for _, issue := range issues {
		rendered, err := issue.Render("")
		if err != nil {
			t.Errorf("Issue %s failed to render: %v", issue.Id(), err)
		}
		if rendered == "" {
			t.Errorf("Issue %s rendered to empty string", issue.Id())
		}
	}
}

// TestIssuesMapCompleteness verifies all issue IDs are in the map
func TestIssuesMapCompleteness(t *testing.T) {
	expectedIds := []Id{
		MenuFileNotFoundId,
		MenuFileInvalidId,
		CapacityExceededId,
		InvalidChoiceId,
		SelectorNotFoundId,
		SelectorFailedId,
		ShellNotFoundId,
		ConfigInvalidId,
		DispatchFailedId,
	}

	for _, id := range expectedIds {
		issue := Get(id)
		if issue == nil {
			t.Errorf("Issue with ID %s is not in the issues map", id)
		}
	}
}
