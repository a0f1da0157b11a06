package email

// Template names a file under templates/ without its extension.
type Template string

const (
	TemplateBookingConfirmation    Template = "booking_confirmation"
	TemplateEnquiryAcknowledgement Template = "enquiry_acknowledgement"
)
