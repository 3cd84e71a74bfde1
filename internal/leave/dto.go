package leave

import (
	"errors"
	"net/url"
	"time"
)

const dateLayout = "2006-01-02"

// ApplyLeaveDTO is the single creation contract both apply variants funnel
// into: the query-param form (fromDate/toDate/leaveType/reason) and the JSON
// form (from/to/type/reason) must produce equivalent applications.
type ApplyLeaveDTO struct {
	FromDate  time.Time
	ToDate    time.Time
	LeaveType string
	Reason    string
}

// applyLeaveJSON is the wire shape of POST /api/leaves/apply-json.
type applyLeaveJSON struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func ParseApplyQuery(q url.Values) (ApplyLeaveDTO, error) {
	return parseApply(q.Get("fromDate"), q.Get("toDate"), q.Get("leaveType"), q.Get("reason"))
}

func (p applyLeaveJSON) toDTO() (ApplyLeaveDTO, error) {
	return parseApply(p.From, p.To, p.Type, p.Reason)
}

func parseApply(from, to, leaveType, reason string) (ApplyLeaveDTO, error) {
	if from == "" || to == "" {
		return ApplyLeaveDTO{}, errors.New("from and to dates are required")
	}

	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return ApplyLeaveDTO{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return ApplyLeaveDTO{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}

	return ApplyLeaveDTO{
		FromDate:  fromDate,
		ToDate:    toDate,
		LeaveType: leaveType,
		Reason:    reason,
	}, nil
}

// UpdateLeaveStatusDTO carries a new status label. Any non-empty string is
// accepted; leave status is deliberately not an enum here, matching the
// observed behavior this service replaces.
type UpdateLeaveStatusDTO struct {
	Status string `json:"status"`
}

func (d UpdateLeaveStatusDTO) Validate() error {
	if d.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// ApplyLeaveResponse is the reduced body the JSON apply variant returns.
type ApplyLeaveResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
