package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartphoneInfoTool(t *testing.T) {
	tests := []struct {
		name    string
		catalog CatalogLookup
		input   string
		want    string
		exact   bool
	}{
		{name: "found", catalog: phoneCatalog(), input: `{"model":"PhoneX"}`, want: "Model: PhoneX\nPrice: 699\nIn Stock: true", exact: true},
		{name: "not found", catalog: phoneCatalog(), input: `{"model":"Lumia"}`, want: NotFoundMessage, exact: true},
		{name: "empty model", catalog: phoneCatalog(), input: `{"model":"  "}`, want: NotFoundMessage, exact: true},
		{name: "index failure", catalog: fakeCatalog{err: errors.New("connection refused")}, input: `{"model":"PhoneX"}`,
			want: "Error during smartphone information retrieval for model PhoneX: connection refused", exact: true},
		{name: "bad arguments", catalog: phoneCatalog(), input: `PhoneX`, want: "Error: could not read the requested model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewSmartphoneInfoTool(tt.catalog).Call(context.Background(), tt.input)
			require.NoError(t, err)
			if tt.exact {
				assert.Equal(t, tt.want, result)
			} else {
				assert.Contains(t, result, tt.want)
			}
		})
	}
}

func TestSmartphoneInfoToolDefinition(t *testing.T) {
	tool := NewSmartphoneInfoTool(phoneCatalog())
	defs := toolDefinitions([]AgentTool{tool})

	require.Len(t, defs, 1)
	assert.Equal(t, "SmartphoneInfo", defs[0].Name)
	assert.Equal(t, []string{"model"}, defs[0].Parameters["required"])

	table := toolTable([]AgentTool{tool})
	assert.Contains(t, table, "SmartphoneInfo")
}
