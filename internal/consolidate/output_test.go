package consolidate

import (
	"strings"
	"testing"

	"github.com/ig4e/awesome-coding-prompts/internal/document"
)

func doc(name, text string) document.Document {
	header, body := document.Parse(text)
	return document.Document{Name: name, Path: name, Header: header, Body: body}
}

func TestOrderPromptsPriorityThenListingOrder(t *testing.T) {
	prompts := []document.Document{
		doc("a.md", "alpha"),
		doc("b.md", "bravo"),
		doc("clean-architecture.md", "arch"),
	}
	ordered := OrderPrompts(prompts, []string{"clean-architecture.md"})
	var names []string
	for _, d := range ordered {
		names = append(names, d.Name)
	}
	want := []string{"clean-architecture.md", "a.md", "b.md"}
	if len(names) != len(want) {
		t.Fatalf("unexpected order: %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v, want %v", names, want)
		}
	}
}

func TestOrderPromptsSkipsAbsentPriorityNames(t *testing.T) {
	prompts := []document.Document{doc("a.md", "alpha")}
	ordered := OrderPrompts(prompts, []string{"nextjs-app-router.md", "a.md"})
	if len(ordered) != 1 || ordered[0].Name != "a.md" {
		t.Fatalf("unexpected order: %+v", ordered)
	}
}

func TestBuildUsesHeaderNameOverStem(t *testing.T) {
	prompts := []document.Document{
		doc("file-on-disk.md", "---\nname: typescript-wizard\n---\nWizardry."),
	}
	out := Build(doc("instructions.md", "Read this."), prompts, nil, fixedClock())
	if !strings.Contains(out, "## Typescript Wizard\n") {
		t.Fatalf("expected heading from header name, got:\n%s", out)
	}
	if strings.Contains(out, "File On Disk") {
		t.Fatal("stem heading used despite header name")
	}
}

func TestBuildOmitsDescriptionLineWhenAbsent(t *testing.T) {
	prompts := []document.Document{doc("plain.md", "Body only.")}
	out := Build(doc("instructions.md", "Read this."), prompts, nil, fixedClock())
	if !strings.Contains(out, "## Plain\n\nBody only.") {
		t.Fatalf("expected heading directly followed by body, got:\n%s", out)
	}
}
