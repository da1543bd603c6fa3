package domain

// SafetyProtocol configures the safety gate: which substrings trigger it
// and the single canned response every trigger maps to.
type SafetyProtocol struct {
	TriggerWords       []string
	ResponseTemplate   string
	EscalationGuidance string
}

// Instruction is the assistant's persona and safety configuration.
// Built once at process start and shared read-only by every session.
type Instruction struct {
	Role                   string
	CorePrinciples         string
	TherapeuticApproach    string
	CommunicationStyle     string
	SafetyProtocol         SafetyProtocol
	AssessmentFramework    string
	InterventionStrategies string
	EthicalBoundaries      string
	CrisisManagement       string
}

// Technique describes one therapeutic method. The list is informational
// context for sessions; it is not injected into the prompt.
type Technique struct {
	Name        string
	Description string
	Application string
}
