package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/amidakuji/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		wantOut string
	}{
		{"success", nil, 0, ""},
		{"interrupted", context.Canceled, 130, ""},
		{"interrupted while rendering", fmt.Errorf("render: %w", context.Canceled), 130, ""},
		{"invalid input", errors.New(errors.ErrCodeInvalidParameter, "line count must be >= 2, got 1"), 1, "Error: INVALID_PARAMETER: line count must be >= 2, got 1\n"},
		{"uncovered lines", &errors.ConnectivityError{Uncovered: []int{5}}, 1, "uncovered lines: 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.Equal(t, tt.want, exitCode(&buf, tt.err))
			if tt.wantOut == "" {
				require.Empty(t, buf.String())
				return
			}
			require.Contains(t, buf.String(), tt.wantOut)
		})
	}
}
