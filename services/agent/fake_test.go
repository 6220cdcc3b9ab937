package agent

import (
	"context"
	"errors"
	"fmt"

	"smartphones/models"
	"smartphones/services/docindex"
	"smartphones/services/llm"
)

type modelCall struct {
	System   string
	Messages []models.Message
	Tools    []llm.ToolDefinition
	Options  llm.CallOptions
}

// scriptedModel returns the queued responses in order and records every call.
type scriptedModel struct {
	responses []models.Message
	err       error
	calls     []modelCall
}

func (m *scriptedModel) Generate(ctx context.Context, system string, messages []models.Message, tools []llm.ToolDefinition, opts ...llm.CallOption) (models.Message, error) {
	var options llm.CallOptions
	for _, opt := range opts {
		opt(&options)
	}
	m.calls = append(m.calls, modelCall{System: system, Messages: messages, Tools: tools, Options: options})
	if m.err != nil {
		return models.Message{}, m.err
	}
	if len(m.responses) == 0 {
		return models.Message{}, errors.New("no scripted response left")
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return next, nil
}

type fakeCatalog struct {
	docs map[string]docindex.Document
	err  error
}

func (f fakeCatalog) Lookup(ctx context.Context, model string) (*docindex.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[model]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func phoneCatalog() fakeCatalog {
	return fakeCatalog{docs: map[string]docindex.Document{
		"PhoneX": {ID: "smartphone-1", Model: "PhoneX", Content: "Model: PhoneX\nPrice: 699\nIn Stock: true"},
		"PhoneY": {ID: "smartphone-2", Model: "PhoneY", Content: "Model: PhoneY\nPrice: 499\nIn Stock: false"},
	}}
}

func lookupCall(id, model string) models.ToolCall {
	return models.ToolCall{ID: id, Name: "SmartphoneInfo", Arguments: fmt.Sprintf(`{"model":%q}`, model)}
}
