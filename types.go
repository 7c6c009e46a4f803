package main

// TaskRequest defines the structure for the webhook request body.
// ProjectPath carries omitempty so the key disappears entirely when no
// path was supplied.
type TaskRequest struct {
	Prompt      string `json:"prompt"`
	ProjectPath string `json:"projectPath,omitempty"`
}

// ExecutionSummary reports what the remote workflow did for a task.
type ExecutionSummary struct {
	OperationsCount          int  `json:"operations_count"`
	SafetyChecksPassed       bool `json:"safety_checks_passed"`
	UserInterventionRequired bool `json:"user_intervention_required"`
}

// ProjectAnalysis reports what the workflow learned about the project.
type ProjectAnalysis struct {
	DependenciesFound     []string `json:"dependencies_found"`
	MissingFiles          []string `json:"missing_files"`
	PotentialImprovements []string `json:"potential_improvements"`
}

// NextStep is one follow-up action proposed by the workflow.
type NextStep struct {
	Priority    string `json:"priority"`
	Description string `json:"description"`
	Automated   bool   `json:"automated"`
}

// TaskResult defines the structure for the webhook response. Every field is
// optional; the workflow is free to include more fields than listed here and
// they are ignored on decode. AutomationConfidence is a pointer because a
// missing value and 0.0 render differently.
type TaskResult struct {
	Status               string            `json:"status"`
	ExecutionSummary     *ExecutionSummary `json:"execution_summary"`
	ProjectAnalysis      *ProjectAnalysis  `json:"project_analysis"`
	NextSteps            []NextStep        `json:"next_steps"`
	Message              string            `json:"message"`
	Reason               string            `json:"reason"`
	AutomationConfidence *float64          `json:"automation_confidence"`
	RecommendedAction    string            `json:"recommended_action"`
	SessionID            string            `json:"session_id"`
	Timestamp            string            `json:"timestamp"`
}
