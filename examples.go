package main

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// exampleCase pairs a demonstration prompt with its project path.
type exampleCase struct {
	Prompt      string
	ProjectPath string
}

// exampleCases covers the main kinds of programming tasks the workflow
// handles: analysis, testing, builds, scaffolding and refactoring.
var exampleCases = []exampleCase{
	{
		Prompt:      "Analyze my React project structure and identify missing dependencies",
		ProjectPath: "/Users/developer/my-react-app",
	},
	{
		Prompt:      "Run all tests and generate a coverage report for the Python project",
		ProjectPath: "/Users/developer/python-api",
	},
	{
		Prompt:      "Build and optimize the Rust application for production deployment",
		ProjectPath: "/Users/developer/rust-service",
	},
	{
		Prompt:      "Create a new Express.js API endpoint for user authentication",
		ProjectPath: "/Users/developer/node-backend",
	},
	{
		Prompt:      "Refactor the database queries to improve performance and add proper indexing",
		ProjectPath: "/Users/developer/database-project",
	},
}

// runExamples executes the built-in demonstration tasks one at a time,
// pausing between successful requests. A failing case is reported and the
// batch moves on; the batch itself never fails.
func runExamples(client taskExecutor, out io.Writer, pause time.Duration) {
	fmt.Fprintln(out, "🧪 AUTONOMOUS PROGRAMMING - TEST SUITE")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for i, tc := range exampleCases {
		fmt.Fprintf(out, "\n🔬 Test Case %d/%d\n", i+1, len(exampleCases))
		fmt.Fprintln(out, strings.Repeat("-", 30))

		if _, err := client.Execute(tc.Prompt, tc.ProjectPath); err != nil {
			fmt.Fprintf(out, "❌ Test case failed: %v\n", err)
			continue
		}

		time.Sleep(pause)
	}

	fmt.Fprintln(out, "\n🏁 Test suite completed!")
}
