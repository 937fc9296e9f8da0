package memegen

import "testing"

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces become underscores", "hello world", "hello_world"},
		{"question and percent", "what? 100%", "what~q_100~p"},
		{"empty input", "", "_"},
		{"whitespace only", "   ", "_"},
		{"literal underscore doubled", "file_name-v2.txt", "file__name--v2.txt"},
		{"literal dash doubled", "kebab-case", "kebab--case"},
		{"hash", "#1 fan", "~h1_fan"},
		{"forward slash", "50/50 odds", "50~s50_odds"},
		{"backslash", `a\b`, "a~bb"},
		{"underscore then space", "_ -", "___--"},
		{"plain text unchanged", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeText(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEncodeOrderAvoidsDoubleEncoding(t *testing.T) {
	// If spaces were substituted before literal underscores, "a b_c" would
	// come out as "a__b__c" instead.
	if got := EncodeText("a b_c"); got != "a_b__c" {
		t.Errorf("Expected %q, got %q", "a_b__c", got)
	}
}

func TestRenderURL(t *testing.T) {
	got := RenderURL("https://api.memegen.link", "drake", []string{"old way", "new way"})
	expected := "https://api.memegen.link/images/drake/old_way/new_way.png"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderURLBlankSlotKeepsPlaceholder(t *testing.T) {
	got := RenderURL("https://api.memegen.link/", "cmm", []string{""})
	expected := "https://api.memegen.link/images/cmm/_.png"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestRenderURLNoLines(t *testing.T) {
	got := RenderURL("https://api.memegen.link", "aag", nil)
	expected := "https://api.memegen.link/images/aag.png"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
