package inbound

// ChecksPayload reports per-dependency probe results.
type ChecksPayload struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
	Upstream string `json:"upstream"`
}

// StatusResponse is the gateway status report.
type StatusResponse struct {
	App     string        `json:"app"`
	Version string        `json:"version"`
	Env     string        `json:"env"`
	Time    string        `json:"time"`
	Checks  ChecksPayload `json:"checks"`
}

func (StatusResponse) Message() string {
	return "Status retrieved successfully."
}
