// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtlens/ecourts-gateway/models"
)

func validCauseListRequest() models.CauseListRequest {
	return models.CauseListRequest{
		StateCode:     "5",
		DistrictCode:  "7",
		CourtCode:     "1",
		CourtNumber:   "1",
		CauseListType: models.CauseListCivil,
		Date:          "16-10-2025",
	}
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("value and pointer both accepted", func(t *testing.T) {
		req := validCauseListRequest()
		require.NoError(t, v.Validate(ctx, req))
		require.NoError(t, v.Validate(ctx, &req))
	})
}

func TestValidate_Requests(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr bool
	}{
		{name: "districts ok", obj: models.DistrictsRequest{StateCode: "5"}},
		{name: "districts empty state", obj: models.DistrictsRequest{}, wantErr: true},
		{name: "court complex ok", obj: models.CourtComplexRequest{StateCode: "5", DistrictCode: "7"}},
		{name: "court complex missing district", obj: models.CourtComplexRequest{StateCode: "5"}, wantErr: true},
		{name: "court name ok", obj: models.CourtNameRequest{StateCode: "5", DistrictCode: "7", CourtCode: "3"}},
		{name: "court name missing court", obj: models.CourtNameRequest{StateCode: "5", DistrictCode: "7"}, wantErr: true},
		{name: "case detail ok", obj: models.CaseDetailRequest{CNR: "UPBL060021142023"}},
		{name: "case detail empty cnr", obj: models.CaseDetailRequest{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_CauseList(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validCauseListRequest()))
	})

	t.Run("criminal accepted", func(t *testing.T) {
		req := validCauseListRequest()
		req.CauseListType = models.CauseListCriminal
		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("unknown list type rejected", func(t *testing.T) {
		req := validCauseListRequest()
		req.CauseListType = "TRAFFIC"
		assert.ErrorIs(t, v.Validate(ctx, req), ErrValidation)
	})

	t.Run("slash date rejected", func(t *testing.T) {
		req := validCauseListRequest()
		req.Date = "2025/10/16"
		assert.ErrorIs(t, v.Validate(ctx, req), ErrValidation)
	})

	t.Run("iso date rejected", func(t *testing.T) {
		req := validCauseListRequest()
		req.Date = "2025-10-16"
		assert.ErrorIs(t, v.Validate(ctx, req), ErrValidation)
	})

	t.Run("field scoping skips other rules", func(t *testing.T) {
		req := models.CauseListRequest{Date: "16-10-2025"}
		assert.NoError(t, v.Validate(ctx, req, "Date"))
	})
}
