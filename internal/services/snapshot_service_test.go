// internal/services/snapshot_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The importer decodes the whole payload before touching storage, so every
// malformed payload must fail without a single write. A service with no
// database connection makes any premature write a panic instead of a silent
// partial import.
func TestImportRejectsMalformedPayloadBeforeWriting(t *testing.T) {
	service := NewSnapshotService(nil)

	tests := []struct {
		name    string
		payload string
	}{
		{"top level is not an object", `[1, 2, 3]`},
		{"proposals is not a list", `{"proposals": 42}`},
		{"nested collection malformed", `{"processes": [{"name": "ok"}], "publications": "broken"}`},
		{"custom programmes not strings", `{"customProgrammes": [{"name": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := service.Import([]byte(tt.payload))
			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestImportEmptyPayloadTouchesNothing(t *testing.T) {
	service := NewSnapshotService(nil)

	summary, err := service.Import([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, summary)
}
