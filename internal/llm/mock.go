package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response   string
	Err        error
	LastSystem string
	LastUser   string
}

func (m *MockClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.LastSystem = systemPrompt
	m.LastUser = userPrompt
	return m.Response, m.Err
}
