package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookstore/pkg/clients"
)

func TestClient_Initialize(t *testing.T) {
	req := &InitializeRequest{
		Email:     "reader@example.com",
		Amount:    100000,
		Currency:  "NGN",
		Reference: "ref-1",
		Metadata:  map[string]string{"coins": "20000"},
	}

	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
		expected    *Authorization
		expectError bool
	}{
		{
			name: "Authorization URL returned",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), "https://api.paystack.co/transaction/initialize", gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
						assert.Equal(t, "Bearer sk_test", headers.Get("Authorization"))
						var sent InitializeRequest
						require.NoError(t, json.Unmarshal(body, &sent))
						assert.Equal(t, *req, sent)
						return http.StatusOK, []byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"ref-1"}}`), nil, nil
					})
			},
			expected: &Authorization{AuthorizationURL: "https://checkout.paystack.com/abc", AccessCode: "abc", Reference: "ref-1"},
		},
		{
			name: "Gateway rejects",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, []byte(`{"status":false,"message":"Invalid key"}`), nil, nil)
			},
			expectError: true,
		},
		{
			name: "Undecodable body",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, []byte(`<html>`), nil, nil)
			},
			expectError: true,
		},
		{
			name: "Transport error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection reset"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			httpClient := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(httpClient)

			auth, err := New(httpClient, "", "sk_test").Initialize(context.Background(), req)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrGateway)
				assert.Nil(t, auth)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, auth)
			}
		})
	}
}
