package models

// BookingRequest carries the patient details and the chosen slot.
// All fields are required; format validation beyond presence is a UI concern.
type BookingRequest struct {
	PatientName  string   `json:"name"`
	PatientEmail string   `json:"email"`
	PatientPhone string   `json:"phone"`
	Treatment    string   `json:"treatment"`
	Slot         TimeSlot `json:"slot"`
}

// BookingResult is returned on a successful booking.
type BookingResult struct {
	EventID    string `json:"eventId"`
	EventLink  string `json:"eventLink"`
	BookingRef string `json:"bookingRef"`
}
