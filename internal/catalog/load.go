package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/havenmind/haven-agent/internal/domain"
)

// personaFile is the YAML shape of an externalized persona override.
type personaFile struct {
	Role                string `yaml:"role"`
	CorePrinciples      string `yaml:"core_principles"`
	TherapeuticApproach string `yaml:"therapeutic_approach"`
	CommunicationStyle  string `yaml:"communication_style"`
	SafetyProtocol      struct {
		TriggerWords       []string `yaml:"trigger_words"`
		ResponseTemplate   string   `yaml:"response_template"`
		EscalationGuidance string   `yaml:"escalation_guidance"`
	} `yaml:"safety_protocol"`
	AssessmentFramework    string `yaml:"assessment_framework"`
	InterventionStrategies string `yaml:"intervention_strategies"`
	EthicalBoundaries      string `yaml:"ethical_boundaries"`
	CrisisManagement       string `yaml:"crisis_management"`
}

// Load returns the persona configuration. With a blank path it returns the
// built-in defaults; otherwise it reads the YAML file at path and fails
// fast with a config error on unreadable, malformed, or incomplete data.
func Load(path string) (domain.Instruction, error) {
	if path == "" {
		return Instruction(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Instruction{}, domain.WrapError(domain.KindConfig,
			fmt.Sprintf("reading persona file %s", path), err)
	}

	var pf personaFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return domain.Instruction{}, domain.WrapError(domain.KindConfig,
			fmt.Sprintf("parsing persona file %s", path), err)
	}

	inst := domain.Instruction{
		Role:                pf.Role,
		CorePrinciples:      pf.CorePrinciples,
		TherapeuticApproach: pf.TherapeuticApproach,
		CommunicationStyle:  pf.CommunicationStyle,
		SafetyProtocol: domain.SafetyProtocol{
			TriggerWords:       pf.SafetyProtocol.TriggerWords,
			ResponseTemplate:   pf.SafetyProtocol.ResponseTemplate,
			EscalationGuidance: pf.SafetyProtocol.EscalationGuidance,
		},
		AssessmentFramework:    pf.AssessmentFramework,
		InterventionStrategies: pf.InterventionStrategies,
		EthicalBoundaries:      pf.EthicalBoundaries,
		CrisisManagement:       pf.CrisisManagement,
	}

	if err := validate(inst); err != nil {
		return domain.Instruction{}, err
	}
	return inst, nil
}

func validate(inst domain.Instruction) error {
	switch {
	case inst.Role == "":
		return domain.NewError(domain.KindConfig, "persona file: role is required")
	case inst.CorePrinciples == "":
		return domain.NewError(domain.KindConfig, "persona file: core_principles is required")
	case len(inst.SafetyProtocol.TriggerWords) == 0:
		return domain.NewError(domain.KindConfig, "persona file: safety_protocol.trigger_words must not be empty")
	case inst.SafetyProtocol.ResponseTemplate == "":
		return domain.NewError(domain.KindConfig, "persona file: safety_protocol.response_template is required")
	}
	return nil
}
