package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"
)

// errNoWebhookURL is the only fatal interactive-mode error: the operator
// declined to supply an endpoint at startup.
var errNoWebhookURL = errors.New("no webhook URL provided")

// isQuitCommand reports whether the input is one of the loop-termination
// words, case-insensitively.
func isQuitCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// lineSource feeds lines read from in to a channel so the loop can select
// between operator input and an interrupt signal. The channel is closed on
// EOF or read error. Stdin must be scanned by exactly one reader, so the
// channel is created once per session and shared by every prompt.
func lineSource(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// promptLine writes the prompt and waits for the next input line or an
// interrupt. The second return value is false when the session is over
// (EOF or interrupt).
func promptLine(lines <-chan string, out io.Writer, interrupt <-chan os.Signal, prompt string) (string, bool) {
	fmt.Fprint(out, prompt)
	select {
	case line, ok := <-lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-interrupt:
		fmt.Fprintln(out, "\n👋 Goodbye!")
		return "", false
	}
}

// interactiveLoop runs the read-eval loop: read a task description and an
// optional project path, execute, render, repeat. Blank tasks are skipped,
// quit words and EOF end the loop, an interrupt ends it with a farewell, and
// any per-turn error is reported in one line before the loop continues.
func interactiveLoop(lines <-chan string, out io.Writer, client taskExecutor, interrupt <-chan os.Signal) {
	fmt.Fprintln(out, "\n🤖 Autonomous Programming Assistant")
	fmt.Fprint(out, "Type your programming requests below (or 'quit' to exit):\n\n")

	for {
		task, ok := promptLine(lines, out, interrupt, "💬 Programming Task: ")
		if !ok {
			return
		}
		if task == "" {
			continue
		}
		if isQuitCommand(task) {
			fmt.Fprintln(out, "👋 Goodbye!")
			return
		}

		projectPath, ok := promptLine(lines, out, interrupt, "📁 Project Path (optional): ")
		if !ok {
			return
		}

		if _, err := client.Execute(task, projectPath); err != nil {
			fmt.Fprintf(out, "❌ Error: %v\n", err)
		}
	}
}

// runInteractive drives a full interactive session on the given streams.
// When no endpoint was configured up front, the operator is prompted for
// one; a blank answer aborts the session.
func runInteractive(in io.Reader, out io.Writer, endpoint string, timeout time.Duration) error {
	lines := lineSource(in)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	if endpoint == "" {
		answer, ok := promptLine(lines, out, interrupt, "Enter your webhook URL: ")
		if !ok || answer == "" {
			return errNoWebhookURL
		}
		endpoint = answer
	}

	client := NewTaskClient(endpoint, timeout)
	client.out = out

	interactiveLoop(lines, out, client, interrupt)
	return nil
}
