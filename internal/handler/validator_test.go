package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventarioBot_Go/internal/domain"
)

func TestValidator_RequiredEnvelopeFields(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name       string
		req        domain.Request
		wantFields []string
	}{
		{"complete", domain.Request{Type: "get", BotID: "b", UserID: "u"}, nil},
		{"missing type", domain.Request{BotID: "b", UserID: "u"}, []string{"type"}},
		{"missing ids", domain.Request{Type: "get"}, []string{"botID", "userID"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			formatted := FormatValidationError(err)
			assert.Len(t, formatted, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Equal(t, "This field is required", formatted[field])
			}
		})
	}
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
