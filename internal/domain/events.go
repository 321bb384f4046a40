package domain

// ActionEvent records a successful administrator mutation.
type ActionEvent struct {
	Action   string `json:"action"`
	Target   string `json:"target"`
	TargetID ID     `json:"target_id"`
	AdminID  ID     `json:"admin_id"`
	Detail   string `json:"detail,omitempty"`
}
