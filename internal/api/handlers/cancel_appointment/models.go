package cancel_appointment

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancelledBy string  `json:"cancelledBy"` // client | professional
	Reason      *string `json:"reason,omitempty"`
}
