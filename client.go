package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// taskExecutor is the single operation both front-ends drive.
type taskExecutor interface {
	Execute(prompt, projectPath string) (*TaskResult, error)
}

// TaskClient talks to the autonomous programming webhook. One underlying
// HTTP client is reused across calls; it carries no state beyond connection
// pooling, and calls are always sequential.
type TaskClient struct {
	webhookURL string
	userAgent  string
	httpClient *http.Client
	out        io.Writer
}

// NewTaskClient creates a client for the given webhook URL. A non-positive
// timeout falls back to the default of five minutes.
func NewTaskClient(webhookURL string, timeout time.Duration) *TaskClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &TaskClient{
		webhookURL: webhookURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: timeout},
		out:        os.Stdout,
	}
}

// Execute sends one programming task to the webhook and blocks until the
// workflow answers or the timeout elapses. On success the parsed result is
// rendered to the client's output and returned. There is no retry; every
// failure surfaces as exactly one of TimeoutError, TransportError or
// InvalidResponseError.
func (c *TaskClient) Execute(prompt, projectPath string) (*TaskResult, error) {
	if prompt == "" {
		return nil, errors.New("prompt must not be empty")
	}

	payload := TaskRequest{Prompt: prompt, ProjectPath: projectPath}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	fmt.Fprintln(c.out, "🚀 Sending autonomous programming request...")
	fmt.Fprintf(c.out, "📝 Prompt: %s\n", prompt)
	if projectPath != "" {
		fmt.Fprintf(c.out, "📁 Project Path: %s\n", projectPath)
	}
	fmt.Fprintln(c.out, "⏳ Waiting for autonomous execution...")

	req, err := http.NewRequest(http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	logrus.Debugf("POST %s (%d bytes)", c.webhookURL, len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, &TimeoutError{Err: err}
		}
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var result TaskResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &InvalidResponseError{Err: err}
	}

	printResults(c.out, &result)
	return &result, nil
}
