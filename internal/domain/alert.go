package domain

// Alert is a zone-violation event produced by the detection pipeline and
// relayed to dashboard clients. The schema mirrors what the pipeline writes
// to the broker; UserID is empty for unidentified persons.
type Alert struct {
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	CameraID  int64   `json:"camera_id"`
	ZoneID    string  `json:"zone_id"`
	ZoneName  string  `json:"zone_name"`
	IOP       float64 `json:"iop"`
	Threshold float64 `json:"threshold"`
	Status    string  `json:"status"`
	FrameID   *int64  `json:"frame_id,omitempty"`
	Timestamp float64 `json:"timestamp"`
}
