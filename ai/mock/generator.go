package mock

import (
	"context"
	"fmt"
	"sync"
)

// MockGenerator is a test double for ai.Generator.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, echoes the prompt length.
	GenerateFunc func(ctx context.Context, system, prompt string) (string, error)

	mu         sync.Mutex
	callCount  int
	lastSystem string
	lastPrompt string
}

// NewMockGenerator creates a mock generator with default behavior.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the request and returns the scripted answer.
func (m *MockGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastSystem = system
	m.lastPrompt = prompt
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, system, prompt)
	}
	return fmt.Sprintf("mock answer (%d prompt bytes)", len(prompt)), nil
}

// CallCount returns the number of Generate calls.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastPrompt returns the most recent system instruction and prompt.
func (m *MockGenerator) LastPrompt() (system, prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSystem, m.lastPrompt
}

// Reset clears recorded calls and injected behavior.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastSystem = ""
	m.lastPrompt = ""
	m.GenerateFunc = nil
}
