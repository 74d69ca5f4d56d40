package opay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/simhonchourasia/playbet-be/models"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *models.OpayValidation
		wantErr bool
	}{
		{
			name:   "paid",
			status: http.StatusOK,
			body:   `{"status":"success","amount":500,"sender":"01711111111"}`,
			want:   &models.OpayValidation{Valid: true, Amount: 500, Sender: "01711111111"},
		},
		{
			name:   "failed payment",
			status: http.StatusOK,
			body:   `{"status":"failed","amount":0}`,
			want:   &models.OpayValidation{Valid: false},
		},
		{
			name:   "unknown trxid",
			status: http.StatusNotFound,
			body:   `{"message":"not found"}`,
			want:   &models.OpayValidation{Valid: false},
		},
		{
			name:    "gateway error",
			status:  http.StatusInternalServerError,
			body:    `{"message":"maintenance"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/validate", r.URL.Path)
				require.Equal(t, "api-key", r.Header.Get("X-API-Key"))
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Equal(t, "TRX-9", body["trxid"])
				require.Equal(t, "01999999999", body["merchant"])
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			settings := models.OpaySettings{BaseURL: srv.URL + "/", APIKey: "api-key", MerchantNumber: "01999999999"}
			got, err := NewClient(time.Second).Validate(context.Background(), settings, "TRX-9")
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "maintenance")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Validate_NotConfigured(t *testing.T) {
	_, err := NewClient(0).Validate(context.Background(), models.OpaySettings{}, "T")
	require.ErrorIs(t, err, ErrNotConfigured)
}
