package restapi

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputValidationIntegration(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name          string
		endpoint      string
		field         string
		expectedError string
	}{
		{
			name:          "SQL injection in canton name",
			endpoint:      "/api/canton/" + url.PathEscape("Bern'; DROP TABLE plants; --"),
			field:         "name",
			expectedError: "canton contains invalid characters",
		},
		{
			name:          "HTML only canton name",
			endpoint:      "/api/canton/" + url.PathEscape("<script>"),
			field:         "name",
			expectedError: "canton cannot be empty",
		},
		{
			name:          "very long canton name",
			endpoint:      "/api/canton/" + strings.Repeat("a", 101) + "/plants.json",
			field:         "name",
			expectedError: "canton too long (max 100 characters)",
		},
		{
			name:          "non numeric limit",
			endpoint:      "/api/canton/Bern/plants.json?limit=abc",
			field:         "limit",
			expectedError: `Invalid field value for field "limit".`,
		},
		{
			name:          "limit above maximum",
			endpoint:      "/api/canton/Bern/plants.json?limit=1000",
			field:         "limit",
			expectedError: "limit must be between 1 and 500",
		},
		{
			name:          "negative offset",
			endpoint:      "/api/canton/Bern/plants.json?offset=-1",
			field:         "offset",
			expectedError: "offset must be non-negative",
		},
		{
			name:          "unknown sort key",
			endpoint:      "/api/canton/Bern/plants.xlsx?sort=-power",
			field:         "sort",
			expectedError: "sort must be one of: order, capacity, source, municipality, commissioning",
		},
		{
			name:     "unknown source",
			endpoint: "/api/cantons.json?sources=Nuclear",
			field:    "sources",
		},
		{
			name:     "unknown mode",
			endpoint: "/api/cantons.json?mode=median",
			field:    "mode",
		},
		{
			name:          "unknown canton selection",
			endpoint:      "/api/dashboard.json?canton=Atlantis",
			field:         "canton",
			expectedError: "unknown canton",
		},
		{
			name:     "invalid table toggle",
			endpoint: "/api/dashboard.json?table=maybe",
			field:    "table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := serveApiAndRetrieveBody(t, api, tt.endpoint)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			fieldErrors := decodeFieldErrors(t, body)
			require.Contains(t, fieldErrors, tt.field)
			if tt.expectedError != "" {
				assert.Contains(t, fieldErrors[tt.field], tt.expectedError)
			}
		})
	}
}

func TestCantonNamesAreNormalized(t *testing.T) {
	api := createTestApi(t)

	// "Zu" followed by a combining diaeresis
	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/canton/Zu%CC%88rich")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	detail := responseEntry(t, model)["detail"].(map[string]interface{})
	assert.Equal(t, "Zürich", detail["canton"])
	assert.Len(t, detail["points"], 3)
}
