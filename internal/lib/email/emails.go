package email

import (
	"fmt"
	"strconv"
)

// BookingConfirmation is the data shown in a booking confirmation email.
type BookingConfirmation struct {
	To            string
	UserName      string
	EventTitle    string
	EventDate     string
	EventLocation string
	Quantity      int
	TotalPrice    float64
	BookingID     string
}

func (c *Client) SendBookingConfirmation(b BookingConfirmation) error {
	data := map[string]string{
		"UserName":      displayName(b.UserName),
		"EventTitle":    b.EventTitle,
		"EventDate":     b.EventDate,
		"EventLocation": b.EventLocation,
		"Quantity":      strconv.Itoa(b.Quantity),
		"TotalPrice":    fmt.Sprintf("%.2f", b.TotalPrice),
		"BookingID":     b.BookingID,
	}

	return c.SendEmail(
		b.To,
		"Your booking for "+b.EventTitle+" is confirmed",
		TemplateBookingConfirmation,
		data,
	)
}

func (c *Client) SendEnquiryAcknowledgement(to, name, eventType string) error {
	data := map[string]string{
		"Name":      displayName(name),
		"EventType": eventType,
	}

	return c.SendEmail(
		to,
		"We received your enquiry",
		TemplateEnquiryAcknowledgement,
		data,
	)
}

func displayName(name string) string {
	if name == "" {
		return "there"
	}
	return name
}
