package rbac

import (
	_ "embed"
	"fmt"
	"strings"

	"go-hrms/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default_permissions.yaml
var defaultPermissionsYAML []byte

// Grant is a single resource/action pair; either side may be "*".
type Grant struct {
	Resource string
	Action   string
}

func (g Grant) String() string {
	return g.Resource + ":" + g.Action
}

func ParseGrant(s string) (Grant, error) {
	resource, action, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || resource == "" || action == "" {
		return Grant{}, fmt.Errorf("invalid permission %q, want resource:action", s)
	}
	return Grant{Resource: resource, Action: action}, nil
}

// DefaultGrants parses the embedded role -> permissions map.
func DefaultGrants() (map[string][]Grant, error) {
	return parseGrants(defaultPermissionsYAML)
}

func parseGrants(data []byte) (map[string][]Grant, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse default permissions: %w", err)
	}

	out := make(map[string][]Grant, len(raw))
	for role, perms := range raw {
		name := domain.NormalizeRole(role)
		for _, p := range perms {
			g, err := ParseGrant(p)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", name, err)
			}
			out[name] = append(out[name], g)
		}
	}
	return out, nil
}
