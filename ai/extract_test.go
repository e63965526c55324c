package ai

import "testing"

func TestExtractResponseTextOutputField(t *testing.T) {
	got := ExtractResponseText(`{"output":"Hola, ¿qué app quieres crear?"}`)
	want := "Hola, ¿qué app quieres crear?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractResponseTextUnescapesNewlines(t *testing.T) {
	got := ExtractResponseText(`{"output":"line one\nline two"}`)
	want := "line one\nline two"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractResponseTextEscapedOutputTakesPriority(t *testing.T) {
	// A double-escaped payload also contains the plain "output" substring;
	// the escaped form must win.
	body := `{"data":"{\"output\":\"escaped reply\"}"}`
	got := ExtractResponseText(body)
	if got != "escaped reply" {
		t.Errorf("got %q, want %q", got, "escaped reply")
	}
}

func TestExtractResponseTextRawWrapper(t *testing.T) {
	body := `{"raw":"{\"output\":\"wrapped reply\"}"}`
	got := ExtractResponseText(body)
	if got != "wrapped reply" {
		t.Errorf("got %q, want %q", got, "wrapped reply")
	}
}

func TestExtractResponseTextFallbackFields(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"response":"from response"}`, "from response"},
		{`{"message":"from message"}`, "from message"},
	}
	for _, tt := range tests {
		if got := ExtractResponseText(tt.body); got != tt.want {
			t.Errorf("ExtractResponseText(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestExtractResponseTextVerbatimFallback(t *testing.T) {
	body := "just plain text with no recognized fields"
	if got := ExtractResponseText(body); got != body {
		t.Errorf("got %q, want verbatim body", got)
	}
}

func TestExtractResponseTextOutputBeatsResponse(t *testing.T) {
	body := `{"output":"primary","response":"secondary"}`
	if got := ExtractResponseText(body); got != "primary" {
		t.Errorf("got %q, want %q", got, "primary")
	}
}
