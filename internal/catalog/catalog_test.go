package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/havenmind/haven-agent/internal/catalog"
	"github.com/havenmind/haven-agent/internal/domain"
)

func TestBuiltInInstruction(t *testing.T) {
	inst := catalog.Instruction()

	if inst.Role == "" || inst.CorePrinciples == "" || inst.AssessmentFramework == "" {
		t.Fatal("built-in instruction has empty required blocks")
	}
	if len(inst.SafetyProtocol.TriggerWords) != 8 {
		t.Fatalf("trigger words = %d, want 8", len(inst.SafetyProtocol.TriggerWords))
	}
	if inst.SafetyProtocol.ResponseTemplate == "" {
		t.Fatal("safety response template is empty")
	}
}

func TestBuiltInTechniques(t *testing.T) {
	techniques := catalog.Techniques()
	if len(techniques) != 5 {
		t.Fatalf("techniques = %d, want 5", len(techniques))
	}
	for _, tech := range techniques {
		if tech.Name == "" || tech.Description == "" || tech.Application == "" {
			t.Fatalf("technique %+v has empty fields", tech)
		}
	}
}

func TestLoadBlankPathReturnsDefaults(t *testing.T) {
	inst, err := catalog.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if inst.Role != catalog.Instruction().Role {
		t.Fatal("blank path must return the built-in defaults")
	}
}

func TestLoadValidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona.yaml")
	content := `role: "Test Companion"
core_principles: "Be kind."
therapeutic_approach: "Listen first."
communication_style: "Warm."
safety_protocol:
  trigger_words: ["danger word"]
  response_template: "Please seek help."
  escalation_guidance: "Escalate."
assessment_framework: "Ask gently."
intervention_strategies: "Suggest small steps."
ethical_boundaries: "No diagnosis."
crisis_management: "Refer out."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	inst, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if inst.Role != "Test Companion" {
		t.Fatalf("role = %q", inst.Role)
	}
	if len(inst.SafetyProtocol.TriggerWords) != 1 || inst.SafetyProtocol.TriggerWords[0] != "danger word" {
		t.Fatalf("trigger words = %v", inst.SafetyProtocol.TriggerWords)
	}
}

func TestLoadFailsFast(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(malformed, []byte("role: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	incomplete := filepath.Join(dir, "incomplete.yaml")
	if err := os.WriteFile(incomplete, []byte(`role: "Only a role"`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", malformed},
		{"incomplete persona", incomplete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Load(tc.path)
			if !domain.IsKind(err, domain.KindConfig) {
				t.Fatalf("Load(%s) error = %v, want config kind", tc.path, err)
			}
		})
	}
}
