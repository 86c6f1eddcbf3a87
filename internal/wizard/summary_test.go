package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledState() State {
	return State{
		CurrentStep: StepSummary,
		Basics: Basics{
			Name:         "Dr. Rao",
			Email:        "rao@example.com",
			Phone:        "+91 90000 00000",
			Organization: "Rao Health Group",
			City:         "Hyderabad",
			ProjectType:  "Medical College",
		},
		Scope:         []string{"Architecture", "Operations"},
		Accreditation: []string{"NABH", "JCI"},
		Timeline:      "6–12 months",
		Budget:        "₹50–100 Cr",
		Details:       "Greenfield campus.\nPhase one is 300 beds.",
	}
}

func TestMailtoSubject(t *testing.T) {
	assert.Equal(t, "Discovery Call - Medical College", MailtoSubject(filledState()))
	assert.Equal(t, "Discovery Call - Healthcare Project", MailtoSubject(NewState()))
}

func TestEmailBody(t *testing.T) {
	est := NewDefaultEstimator().Derive(filledState())
	body := EmailBody(filledState(), est)

	for _, want := range []string{
		"Name: Dr. Rao",
		"Email: rao@example.com",
		"Phone: +91 90000 00000",
		"Organization: Rao Health Group",
		"City: Hyderabad",
		"Project Type: Medical College",
		"Scope: Architecture, Operations",
		"Accreditation: NABH, JCI",
		"Timeline: 6–12 months",
		"Budget: ₹50–100 Cr",
		"Estimated Duration: ~11 months",
		"Complexity: High",
		"Feasibility & Planning",
		"Greenfield campus.\nPhase one is 300 beds.",
		"Please suggest available slots for a discovery call.",
	} {
		assert.Contains(t, body, want)
	}
}

func TestEmailBody_EmptyFieldsStayLabeled(t *testing.T) {
	est := NewDefaultEstimator().Derive(NewState())
	body := EmailBody(NewState(), est)

	assert.Contains(t, body, "Name: \n")
	assert.Contains(t, body, "Scope: \n")
	assert.Contains(t, body, "Estimated Duration: ~2 months")
}

func TestMailtoLink(t *testing.T) {
	state := filledState()
	link := MailtoLink(state, NewDefaultEstimator().Derive(state))

	require.True(t, strings.HasPrefix(link, "mailto:info@valuemedhealthcare.com?subject="))
	assert.Contains(t, link, "Discovery%20Call%20-%20Medical%20College")
	assert.NotContains(t, link, "+", "spaces must encode as %20, not +")
}

func TestProjectRequestMailto(t *testing.T) {
	link := ProjectRequestMailto(NewState())
	assert.Equal(t, "mailto:info@valuemedhealthcare.com?subject=Project%20Request%20-%20Healthcare%20Project", link)
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink(filledState())
	require.True(t, strings.HasPrefix(link, "https://wa.me/919701876584?text="))
	assert.Contains(t, link, "Dr.%20Rao")
	assert.Contains(t, link, "Medical%20College")
}

func TestWhatsAppLink_Placeholders(t *testing.T) {
	link := WhatsAppLink(NewState())

	for _, placeholder := range []string{
		"%28Your%20Name%29",
		"%28Organization%29",
		"%28Type%29",
		"%28City%29",
		"%28Select%20Scope%29",
		"%28Optional%29",
		"%28Timeline%29",
		"%28Budget%29",
	} {
		assert.Contains(t, link, placeholder)
	}
}

func TestBuildSummary(t *testing.T) {
	state := filledState()
	est := NewDefaultEstimator().Derive(state)
	sum := BuildSummary(state, est)

	assert.Equal(t, "Medical College", sum.Type)
	assert.Equal(t, "Hyderabad", sum.City)
	assert.Equal(t, est, sum.Estimate)
	assert.Equal(t, "tel:+919701876584", sum.CallLink)
	assert.NotEmpty(t, sum.MailtoLink)
	assert.NotEmpty(t, sum.WhatsAppLink)
}
