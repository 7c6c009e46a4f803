package main

import "time"

const (
	defaultTimeout       = 300 * time.Second
	defaultUserAgent     = "TaskClient/1.0"
	maxShownImprovements = 3
	maxShownNextSteps    = 5
)
