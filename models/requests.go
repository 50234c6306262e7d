// Package models defines the gateway's public request and response shapes.
package models

// CauseListType values accepted by the cause-list operation.
const (
	CauseListCivil    = "CIVIL"
	CauseListCriminal = "CRIMINAL"
)

// DistrictsRequest asks for the districts of one state.
type DistrictsRequest struct {
	StateCode string `json:"state_code" validate:"required"`
}

// CourtComplexRequest asks for the court complexes of one district.
type CourtComplexRequest struct {
	StateCode    string `json:"state_code" validate:"required"`
	DistrictCode string `json:"district_code" validate:"required"`
}

// CourtNameRequest asks for the courts inside one complex.
type CourtNameRequest struct {
	StateCode    string `json:"state_code" validate:"required"`
	DistrictCode string `json:"district_code" validate:"required"`
	CourtCode    string `json:"court_code" validate:"required"`
}

// CauseListRequest asks for the scheduled listing of one court bench on one
// day. Date is DD-MM-YYYY as upstream expects it.
type CauseListRequest struct {
	StateCode     string `json:"state_code" validate:"required"`
	DistrictCode  string `json:"district_code" validate:"required"`
	CourtCode     string `json:"court_code" validate:"required"`
	CourtNumber   string `json:"court_number" validate:"required"`
	CauseListType string `json:"cause_list_type" validate:"required,oneof=CIVIL CRIMINAL"`
	Date          string `json:"date" validate:"required,causelistdate"`
}

// CaseDetailRequest identifies a case by its CNR (Case Number Reference).
type CaseDetailRequest struct {
	CNR string `json:"cnr" validate:"required,max=100"`
}
