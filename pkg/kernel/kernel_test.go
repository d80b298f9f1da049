package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CandidateID
		wantErr bool
	}{
		{name: "plain numeric", input: "1024", want: 1024},
		{name: "compound id keeps leading segment", input: "1024-followup", want: 1024},
		{name: "compound with numeric suffix", input: "7-2", want: 7},
		{name: "whitespace trimmed", input: " 42 ", want: 42},
		{name: "non numeric", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCandidateID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
