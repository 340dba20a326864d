package agent

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestText(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{
		{Text: "thinking about it", Thought: true},
		{Text: "Bitcoin led 8 years."},
		{FunctionCall: &genai.FunctionCall{Name: "insights"}},
		{Text: "Gold led 2."},
	}}
	if got, want := text(c), "Bitcoin led 8 years.\nGold led 2."; got != want {
		t.Errorf("text() = %q, want %q", got, want)
	}
}

func TestExpert_Call(t *testing.T) {
	e := NewResearcher()
	lib := NewLibrary([]*Expert{e})

	resp := call(t, lib, e.Name, map[string]any{"question": 42})
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "expected string") {
		t.Errorf("Call() with a number = %v, want a type error", resp)
	}

	// the chat is not started
	resp = call(t, lib, e.Name, map[string]any{"question": "Why did gold rise in 2025?"})
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "not started") {
		t.Errorf("Call() before Start = %v, want a not started error", resp)
	}
	if _, err := e.Ask(context.Background(), &genai.Part{Text: "hello"}); err == nil {
		t.Error("Ask() before Start succeeded")
	}
}
