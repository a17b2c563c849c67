package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-kit/internal/models"
)

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		RecipeID:     1,
		CustomerName: "Asha Rao",
		Email:        "asha@example.com",
		Address:      "12 MG Road, Bengaluru",
		Phone:        "+91 98765 43210",
	}
}

func TestValidateCreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateOrderRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *models.CreateOrderRequest) {},
		},
		{
			name:   "valid with serving count and customization",
			mutate: func(r *models.CreateOrderRequest) { r.ServingCount = 4 },
		},
		{
			name:      "zero recipe id",
			mutate:    func(r *models.CreateOrderRequest) { r.RecipeID = 0 },
			wantField: "recipeId",
		},
		{
			name:      "negative recipe id",
			mutate:    func(r *models.CreateOrderRequest) { r.RecipeID = -5 },
			wantField: "recipeId",
		},
		{
			name:      "blank customer name",
			mutate:    func(r *models.CreateOrderRequest) { r.CustomerName = "   " },
			wantField: "customerName",
		},
		{
			name:      "malformed email",
			mutate:    func(r *models.CreateOrderRequest) { r.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "email with trailing at sign",
			mutate:    func(r *models.CreateOrderRequest) { r.Email = "asha@" },
			wantField: "email",
		},
		{
			name:      "missing address",
			mutate:    func(r *models.CreateOrderRequest) { r.Address = "" },
			wantField: "address",
		},
		{
			name:      "missing phone",
			mutate:    func(r *models.CreateOrderRequest) { r.Phone = "" },
			wantField: "phone",
		},
		{
			name:      "negative serving count",
			mutate:    func(r *models.CreateOrderRequest) { r.ServingCount = -1 },
			wantField: "servingCount",
		},
		{
			name:      "absurd serving count",
			mutate:    func(r *models.CreateOrderRequest) { r.ServingCount = 1000 },
			wantField: "servingCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(&req)

			err := ValidateCreateOrder(&req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateCreateOrderNormalizes(t *testing.T) {
	req := validOrderRequest()
	req.CustomerName = "  Asha Rao  "
	req.Email = " asha@example.com "

	require.NoError(t, ValidateCreateOrder(&req))
	assert.Equal(t, "Asha Rao", req.CustomerName)
	assert.Equal(t, "asha@example.com", req.Email)
}

func TestValidateJoinWaitlist(t *testing.T) {
	phone := " +91 91234 56789 "

	tests := []struct {
		name      string
		req       models.JoinWaitlistRequest
		wantField string
	}{
		{
			name: "valid without phone",
			req:  models.JoinWaitlistRequest{Name: "Asha", Email: "a@x.com"},
		},
		{
			name: "valid with phone",
			req:  models.JoinWaitlistRequest{Name: "Asha", Email: "a@x.com", Phone: &phone},
		},
		{
			name:      "missing name",
			req:       models.JoinWaitlistRequest{Email: "a@x.com"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       models.JoinWaitlistRequest{Name: "Asha"},
			wantField: "email",
		},
		{
			name:      "email without at sign",
			req:       models.JoinWaitlistRequest{Name: "Asha", Email: "a.x.com"},
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJoinWaitlist(&tt.req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidateJoinWaitlistTrimsPhone(t *testing.T) {
	phone := " +91 91234 56789 "
	req := models.JoinWaitlistRequest{Name: "Asha", Email: "a@x.com", Phone: &phone}

	require.NoError(t, ValidateJoinWaitlist(&req))
	require.NotNil(t, req.Phone)
	assert.Equal(t, "+91 91234 56789", *req.Phone)
}
