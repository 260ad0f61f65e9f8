package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name:    "release",
			version: "0.1.0",
			want:    "orgtree v0.1.0\nOrganisation hierarchy totals built with Go\n",
		},
		{
			name:    "dev build",
			version: "dev",
			want:    "orgtree vdev\nOrganisation hierarchy totals built with Go\n",
		},
		{
			name:    "extra args ignored",
			version: "1.2.3",
			args:    []string{"extra"},
			want:    "orgtree v1.2.3\nOrganisation hierarchy totals built with Go\n",
		},
		{
			name:    "unknown flag",
			version: "1.2.3",
			args:    []string{"--short"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			var out, errOut bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if errOut.Len() != 0 {
				t.Errorf("unexpected stderr: %q", errOut.String())
			}
		})
	}
}

func TestCommandMetadata(t *testing.T) {
	for _, c := range []*cobra.Command{
		NewVersionCommand("test"), NewDemoCommand(), NewTotalCommand(), NewTreeCommand(),
		NewListCommand(), NewLevelsCommand(), NewChainCommand(), NewValidateCommand(),
	} {
		t.Run(c.Name(), func(t *testing.T) {
			if c.Short == "" {
				t.Error("Short should not be empty")
			}
			if c.Long == "" {
				t.Error("Long should not be empty")
			}
			if c.RunE == nil && c.Run == nil {
				t.Error("command has no run function")
			}
		})
	}
}
