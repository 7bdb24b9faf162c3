package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCapabilities_UnmarshalBothSchemes(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "camelCase announcement",
			in: `{"agentId": "web01", "hostname": "web01.lan", "platform": "linux",
				"capabilities": ["shell"], "workspaceRoots": ["/srv"],
				"grpcPort": 50051, "ipAddress": "192.168.1.10"}`,
		},
		{
			name: "snake_case announcement from older agent",
			in: `{"agent_id": "web01", "hostname": "web01.lan", "platform": "linux",
				"capabilities": ["shell"], "workspace_roots": ["/srv"],
				"grpc_port": 50051, "ip_address": "192.168.1.10"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a AgentCapabilities
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, "web01", a.AgentID)
			assert.Equal(t, []string{"/srv"}, a.WorkspaceRoots)
			assert.Equal(t, 50051, a.GRPCPort)
			assert.Equal(t, "192.168.1.10", a.IPAddress)
		})
	}
}

func TestAgentCapabilities_CamelCaseWinsWhenBothPresent(t *testing.T) {
	in := `{"agentId": "new-name", "agent_id": "old-name", "grpcPort": 50051, "grpc_port": 40051}`
	var a AgentCapabilities
	require.NoError(t, json.Unmarshal([]byte(in), &a))
	assert.Equal(t, "new-name", a.AgentID)
	assert.Equal(t, 50051, a.GRPCPort)
}

func TestAgentCapabilities_EncodesCamelCase(t *testing.T) {
	data, err := json.Marshal(&AgentCapabilities{AgentID: "db01", GRPCPort: 50051})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"agentId":"db01"`)
	assert.NotContains(t, string(data), "agent_id")
}
