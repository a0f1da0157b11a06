package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BookingConfirmation(t *testing.T) {
	body, err := Render(TemplateBookingConfirmation, map[string]string{
		"UserName":   "Priya",
		"EventTitle": "Jazz & Filter Coffee",
		"EventDate":  "2026-12-20",
		"Quantity":   "2",
		"TotalPrice": "1500.00",
		"BookingID":  "b-1",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Priya,")
	assert.Contains(t, body, "Jazz &amp; Filter Coffee")
	assert.Contains(t, body, "1500.00")
	assert.NotContains(t, body, "Location")
}

func TestRender_EnquiryAcknowledgement(t *testing.T) {
	body, err := Render(TemplateEnquiryAcknowledgement, map[string]string{
		"Name":      displayName(""),
		"EventType": "",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi there,")
	assert.NotContains(t, body, " event.")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("password_reset"), nil)
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	for name := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Preview(name)
			require.NoError(t, err)
			assert.NotEmpty(t, body)
		})
	}
}
