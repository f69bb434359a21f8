package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		width     int
		want      string
		wantLines int
	}{
		{name: "nil", err: nil, width: 80, want: ""},
		{name: "short", err: errors.New("workspace not found"), width: 80, want: "Error: workspace not found"},
		{name: "empty message", err: errors.New(""), width: 80, want: "Error: unknown error"},
		{name: "wraps to two lines", err: errors.New("failed to open document: document file unavailable"), width: 30, wantLines: 2},
		{name: "truncates", err: errors.New(strings.Repeat("word ", 40)), width: 20, wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, tt.width)
			if tt.want != "" || tt.err == nil {
				assert.Equal(t, tt.want, got)
			}
			if tt.wantLines > 0 {
				lines := strings.Split(got, "\n")
				assert.Len(t, lines, tt.wantLines)
				assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
			}
		})
	}
}

func TestFormatErrorForDisplay_TruncationMark(t *testing.T) {
	got := formatErrorForDisplay(errors.New(strings.Repeat("word ", 40)), 20)
	assert.True(t, strings.HasSuffix(got, truncationMark))
}

func TestErrorManager_ClearsOnlyLatest(t *testing.T) {
	em := NewErrorManager(time.Second)

	cmd := em.SetError(errors.New("first"))
	require.NotNil(t, cmd)
	em.SetError(errors.New("second"))

	em.Clear(1)
	assert.EqualError(t, em.Err(), "second")

	em.Clear(2)
	assert.NoError(t, em.Err())
	assert.Empty(t, em.View(80))
}

func TestErrorManager_NoDelayKeepsError(t *testing.T) {
	em := NewErrorManager(0)
	assert.Nil(t, em.SetError(errors.New("sticky")))
	assert.Contains(t, em.View(80), "sticky")
}
