package models

import (
	"encoding/json"
	"time"
)

// AgentCapabilities describes one discovered execution agent.
// Agents announce themselves over UDP with camelCase field names; older agent
// builds use snake_case. Both are accepted on decode; encode emits camelCase.
type AgentCapabilities struct {
	AgentID                string    `json:"agentId"`
	Hostname               string    `json:"hostname"`
	Platform               string    `json:"platform"` // windows|linux|macos
	Capabilities           []string  `json:"capabilities"`
	WorkspaceRoots         []string  `json:"workspaceRoots"`
	CertificateFingerprint string    `json:"certificateFingerprint"`
	DiscoveryPort          int       `json:"discoveryPort"`
	GRPCPort               int       `json:"grpcPort"`
	IPAddress              string    `json:"ipAddress,omitempty"`
	LastSeen               time.Time `json:"-"`
}

// agentCapabilitiesWire mirrors AgentCapabilities with both naming schemes.
type agentCapabilitiesWire struct {
	AgentID      string `json:"agentId"`
	AgentIDSnake string `json:"agent_id"`

	Hostname string `json:"hostname"`

	Platform string `json:"platform"`

	Capabilities []string `json:"capabilities"`

	WorkspaceRoots      []string `json:"workspaceRoots"`
	WorkspaceRootsSnake []string `json:"workspace_roots"`

	CertificateFingerprint      string `json:"certificateFingerprint"`
	CertificateFingerprintSnake string `json:"certificate_fingerprint"`

	DiscoveryPort      int `json:"discoveryPort"`
	DiscoveryPortSnake int `json:"discovery_port"`

	GRPCPort      int `json:"grpcPort"`
	GRPCPortSnake int `json:"grpc_port"`

	IPAddress      string `json:"ipAddress"`
	IPAddressSnake string `json:"ip_address"`
}

// UnmarshalJSON decodes an agent announcement, accepting camelCase or
// snake_case field names. camelCase wins when both are present.
func (a *AgentCapabilities) UnmarshalJSON(data []byte) error {
	var w agentCapabilitiesWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.AgentID = firstNonEmpty(w.AgentID, w.AgentIDSnake)
	a.Hostname = w.Hostname
	a.Platform = w.Platform
	a.Capabilities = w.Capabilities
	a.WorkspaceRoots = w.WorkspaceRoots
	if a.WorkspaceRoots == nil {
		a.WorkspaceRoots = w.WorkspaceRootsSnake
	}
	a.CertificateFingerprint = firstNonEmpty(w.CertificateFingerprint, w.CertificateFingerprintSnake)
	a.DiscoveryPort = firstNonZero(w.DiscoveryPort, w.DiscoveryPortSnake)
	a.GRPCPort = firstNonZero(w.GRPCPort, w.GRPCPortSnake)
	a.IPAddress = firstNonEmpty(w.IPAddress, w.IPAddressSnake)
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonZero(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
