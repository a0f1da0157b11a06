package email

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateBookingConfirmation: {
		"UserName":      "Priya",
		"EventTitle":    "Carnatic Evening at Music Academy",
		"EventDate":     "2026-12-20",
		"EventLocation": "Music Academy, Chennai",
		"Quantity":      "2",
		"TotalPrice":    "1500.00",
		"BookingID":     "3f6c1f9e-8a52-4f0e-9d4b-0c6f2f1f7a10",
	},
	TemplateEnquiryAcknowledgement: {
		"Name":      "Arjun",
		"EventType": "Wedding",
	},
}

// Preview renders a template with its sample data.
func Preview(templateName Template) (string, error) {
	return Render(templateName, PreviewData[templateName])
}
