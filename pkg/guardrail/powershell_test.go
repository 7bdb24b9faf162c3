package guardrail

import "testing"

func TestValidatePowerShell(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		wantFixed   string
		wantChanged bool
		wantProblem bool
	}{
		{
			name:      "clean command untouched",
			command:   `Get-ChildItem -Path S:\ -Recurse`,
			wantFixed: `Get-ChildItem -Path S:\ -Recurse`,
		},
		{
			name:        "smart quotes normalized",
			command:     `Write-Output “hello”`,
			wantFixed:   `Write-Output "hello"`,
			wantChanged: true,
		},
		{
			name:        "chain operator replaced",
			command:     `hostname && whoami`,
			wantFixed:   `hostname; whoami`,
			wantChanged: true,
		},
		{
			name:        "double shell wrapper stripped",
			command:     `powershell -Command "Get-Date"`,
			wantFixed:   `Get-Date`,
			wantChanged: true,
		},
		{
			name:        "unterminated string flagged",
			command:     `Write-Output "unclosed`,
			wantFixed:   `Write-Output "unclosed`,
			wantProblem: true,
		},
		{
			name:        "unbalanced brace flagged",
			command:     `ForEach-Object { $_.Name`,
			wantFixed:   `ForEach-Object { $_.Name`,
			wantProblem: true,
		},
		{
			name:      "braces inside strings ignored",
			command:   `Write-Output "a { b"`,
			wantFixed: `Write-Output "a { b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed, changed, problem := ValidatePowerShell(tt.command)
			if fixed != tt.wantFixed {
				t.Errorf("fixed = %q, want %q", fixed, tt.wantFixed)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if (problem != "") != tt.wantProblem {
				t.Errorf("problem = %q, wantProblem=%v", problem, tt.wantProblem)
			}
		})
	}
}

func TestMatchTargets(t *testing.T) {
	discovered := []string{"domain02", "ians-r16", "ws1"}

	t.Run("ordered by appearance", func(t *testing.T) {
		matched, unavailable := MatchTargets(
			"create a file on ians-r16 then reboot domain02", discovered)
		if len(matched) != 2 || matched[0] != "ians-r16" || matched[1] != "domain02" {
			t.Errorf("matched = %v", matched)
		}
		if len(unavailable) != 0 {
			t.Errorf("unavailable = %v", unavailable)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		matched, _ := MatchTargets("Reboot DOMAIN02", discovered)
		if len(matched) != 1 || matched[0] != "domain02" {
			t.Errorf("matched = %v", matched)
		}
	})

	t.Run("unavailable named target", func(t *testing.T) {
		_, unavailable := MatchTargets("reboot web-99", []string{"ws1"})
		if len(unavailable) != 1 || unavailable[0] != "web-99" {
			t.Errorf("unavailable = %v", unavailable)
		}
	})

	t.Run("common words ignored", func(t *testing.T) {
		matched, unavailable := MatchTargets("restart the service on my workstation", []string{"ws1"})
		if len(matched) != 0 || len(unavailable) != 0 {
			t.Errorf("matched=%v unavailable=%v", matched, unavailable)
		}
	})
}
