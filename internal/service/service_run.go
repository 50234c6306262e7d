package service

import (
	"context"

	"github.com/courtlens/ecourts-gateway/internal/apperrors"
	"github.com/courtlens/ecourts-gateway/models"
)

// Operation kind tags accepted by Run.
const (
	OpStates       = "states"
	OpDistricts    = "districts"
	OpCourtComplex = "court_complex"
	OpCourtNames   = "court_names"
	OpCauseList    = "cause_list"
	OpCaseDetail   = "case_detail"
)

// Run maps a kind tag plus a loosely typed parameter map onto the typed
// operations. Unknown kinds fail before anything touches the network.
func (g *gatewayService) Run(ctx context.Context, kind string, token string, params map[string]string) (map[string]any, error) {
	switch kind {
	case OpStates:
		return g.States(ctx, token)

	case OpDistricts:
		return g.Districts(ctx, token, models.DistrictsRequest{
			StateCode: params["state_code"],
		})

	case OpCourtComplex:
		return g.CourtComplex(ctx, token, models.CourtComplexRequest{
			StateCode:    params["state_code"],
			DistrictCode: params["district_code"],
		})

	case OpCourtNames:
		return g.CourtNames(ctx, token, models.CourtNameRequest{
			StateCode:    params["state_code"],
			DistrictCode: params["district_code"],
			CourtCode:    params["court_code"],
		})

	case OpCauseList:
		return g.CauseList(ctx, token, models.CauseListRequest{
			StateCode:     params["state_code"],
			DistrictCode:  params["district_code"],
			CourtCode:     params["court_code"],
			CourtNumber:   params["court_number"],
			CauseListType: params["cause_list_type"],
			Date:          params["date"],
		})

	case OpCaseDetail:
		return g.CaseDetail(ctx, token, models.CaseDetailRequest{
			CNR: params["cnr"],
		})

	default:
		return nil, apperrors.Newf(apperrors.KindInvalidArgument, "unknown operation kind %q", kind)
	}
}
