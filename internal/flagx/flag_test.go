package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-a", "http://x", "-z", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"--config=conf.json", "-a=http://x"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-q", "1", "-w"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
