package main

import (
	"fmt"
	"io"
	"strings"
)

// printResults renders a parsed workflow result as a terminal report. Pure
// formatting: absent optional fields either fall back to a deterministic
// default or are omitted, per field.
func printResults(w io.Writer, result *TaskResult) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "🤖 AUTONOMOUS PROGRAMMING RESULTS")
	fmt.Fprintln(w, divider)

	if result.Status == "success" {
		printSuccess(w, result)
	} else {
		printFailure(w, result)
	}

	if result.SessionID != "" {
		fmt.Fprintf(w, "\n🆔 Session ID: %s\n", result.SessionID)
	}
	if result.Timestamp != "" {
		fmt.Fprintf(w, "⏰ Completed: %s\n", result.Timestamp)
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)
}

func printSuccess(w io.Writer, result *TaskResult) {
	fmt.Fprintln(w, "✅ Status: SUCCESS")

	summary := result.ExecutionSummary
	if summary == nil {
		summary = &ExecutionSummary{}
	}
	fmt.Fprintf(w, "🔧 Operations Count: %d\n", summary.OperationsCount)
	fmt.Fprintf(w, "🛡️  Safety Checks: %s\n", passFail(summary.SafetyChecksPassed))
	if summary.UserInterventionRequired {
		fmt.Fprintln(w, "🤝 User Intervention: ❗ REQUIRED")
	} else {
		fmt.Fprintln(w, "🤝 User Intervention: 🤖 AUTONOMOUS")
	}

	if analysis := result.ProjectAnalysis; analysis != nil {
		fmt.Fprintln(w, "\n📊 PROJECT ANALYSIS:")

		if len(analysis.DependenciesFound) > 0 {
			fmt.Fprintf(w, "   📦 Dependencies: %s\n", strings.Join(analysis.DependenciesFound, ", "))
		}
		if len(analysis.MissingFiles) > 0 {
			fmt.Fprintf(w, "   📄 Missing Files: %s\n", strings.Join(analysis.MissingFiles, ", "))
		}
		if improvements := analysis.PotentialImprovements; len(improvements) > 0 {
			fmt.Fprintf(w, "   🔧 Improvements: %d suggested\n", len(improvements))
			for _, imp := range firstN(improvements, maxShownImprovements) {
				fmt.Fprintf(w, "      • %s\n", imp)
			}
		}
	}

	if len(result.NextSteps) > 0 {
		fmt.Fprintln(w, "\n📋 NEXT STEPS:")
		for _, step := range firstN(result.NextSteps, maxShownNextSteps) {
			priority := step.Priority
			if priority == "" {
				priority = "medium"
			}
			desc := step.Description
			if desc == "" {
				desc = "No description"
			}
			tag := "👤 MANUAL"
			if step.Automated {
				tag = "🤖 AUTO"
			}
			fmt.Fprintf(w, "   %s [%s] %s\n", tag, strings.ToUpper(priority), desc)
		}
	}
}

func printFailure(w io.Writer, result *TaskResult) {
	fmt.Fprintln(w, "❌ Status: ERROR/SAFETY OVERRIDE")

	message := result.Message
	if message == "" {
		message = "No message provided"
	}
	reason := result.Reason
	if reason == "" {
		reason = "No reason provided"
	}
	fmt.Fprintf(w, "💬 Message: %s\n", message)
	fmt.Fprintf(w, "🔍 Reason: %s\n", reason)

	if result.AutomationConfidence != nil {
		fmt.Fprintf(w, "🎯 Automation Confidence: %.1f%%\n", *result.AutomationConfidence*100)
	}
	if result.RecommendedAction != "" {
		fmt.Fprintf(w, "💡 Recommendation: %s\n", result.RecommendedAction)
	}
}

func passFail(passed bool) string {
	if passed {
		return "✅ PASSED"
	}
	return "❌ FAILED"
}

// firstN returns at most the first n elements, preserving order.
func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
