package views

import (
	"strings"
	"testing"
)

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if out := RenderMarkdown("   "); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderMarkdownProducesText(t *testing.T) {
	out := RenderMarkdown("### keys\n- `q` quit app\n")
	if out == "" {
		t.Fatal("expected rendered output")
	}
	if !strings.Contains(out, "quit app") {
		t.Fatalf("expected binding text in output: %q", out)
	}
}

func TestRenderHelpPanelIncludesBindingsView(t *testing.T) {
	out := RenderHelpPanel(HelpPanelData{
		CurrentView:  "Tasks",
		BindingsView: "BINDINGS-HERE",
		HelpView:     "short help",
	})
	if !strings.Contains(out, "view: tasks") {
		t.Fatalf("expected lowercased view name: %q", out)
	}
	if !strings.Contains(out, "BINDINGS-HERE") {
		t.Fatalf("expected bindings view in output: %q", out)
	}
}
