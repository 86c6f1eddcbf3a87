package wizard

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	ContactEmail    = "info@valuemedhealthcare.com"
	ContactPhone    = "+919701876584"
	whatsappNumber  = "919701876584"
	fallbackProject = "Healthcare Project"
)

// Summary is the read model for the final step: the collected answers next
// to the derived estimate, plus ready-made hand-off links.
type Summary struct {
	Type          string   `json:"type"`
	City          string   `json:"city"`
	Scope         []string `json:"scope"`
	Accreditation []string `json:"accreditation"`
	Timeline      string   `json:"timeline"`
	Budget        string   `json:"budget"`
	Estimate      Estimate `json:"estimate"`
	MailtoLink    string   `json:"mailtoLink"`
	WhatsAppLink  string   `json:"whatsappLink"`
	CallLink      string   `json:"callLink"`
}

func BuildSummary(s State, est Estimate) Summary {
	return Summary{
		Type:          s.Basics.ProjectType,
		City:          s.Basics.City,
		Scope:         s.Scope,
		Accreditation: s.Accreditation,
		Timeline:      s.Timeline,
		Budget:        s.Budget,
		Estimate:      est,
		MailtoLink:    MailtoLink(s, est),
		WhatsAppLink:  WhatsAppLink(s),
		CallLink:      "tel:" + ContactPhone,
	}
}

// MailtoSubject names the project type, falling back to a generic label
// when the visitor has not picked one yet.
func MailtoSubject(s State) string {
	return "Discovery Call - " + orFallback(s.Basics.ProjectType, fallbackProject)
}

// EmailBody renders the discovery-call email: every field the visitor
// entered, labeled, with empty ones left blank rather than dropped, then
// the derived estimate.
func EmailBody(s State, est Estimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Basics.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Basics.Email)
	fmt.Fprintf(&b, "Phone: %s\n", s.Basics.Phone)
	fmt.Fprintf(&b, "Organization: %s\n", s.Basics.Organization)
	fmt.Fprintf(&b, "City: %s\n\n", s.Basics.City)
	fmt.Fprintf(&b, "Project Type: %s\n", s.Basics.ProjectType)
	fmt.Fprintf(&b, "Scope: %s\n", strings.Join(s.Scope, ", "))
	fmt.Fprintf(&b, "Accreditation: %s\n", strings.Join(s.Accreditation, ", "))
	fmt.Fprintf(&b, "Timeline: %s\n", s.Timeline)
	fmt.Fprintf(&b, "Budget: %s\n\n", s.Budget)
	fmt.Fprintf(&b, "Estimated Duration: ~%d months\n", est.Months)
	fmt.Fprintf(&b, "Complexity: %s\n", est.Complexity)
	fmt.Fprintf(&b, "Phases: %s\n\n", strings.Join(est.Phases, "; "))
	fmt.Fprintf(&b, "Details:\n%s\n\n", s.Details)
	b.WriteString("Please suggest available slots for a discovery call.")
	return b.String()
}

// MailtoLink is the pre-filled discovery-call mailto URL.
func MailtoLink(s State, est Estimate) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		ContactEmail, escape(MailtoSubject(s)), escape(EmailBody(s, est)))
}

// ProjectRequestMailto is the lighter "email this plan" link with subject
// only.
func ProjectRequestMailto(s State) string {
	subject := "Project Request - " + orFallback(s.Basics.ProjectType, fallbackProject)
	return fmt.Sprintf("mailto:%s?subject=%s", ContactEmail, escape(subject))
}

// WhatsAppLink pre-fills a chat message. Empty fields get parenthesized
// placeholders so the visitor sees what to fill in before sending.
func WhatsAppLink(s State) string {
	var b strings.Builder
	b.WriteString("Hello ValueMed,\n")
	fmt.Fprintf(&b, "I'm %s from %s.\n",
		orFallback(s.Basics.Name, "(Your Name)"),
		orFallback(s.Basics.Organization, "(Organization)"))
	fmt.Fprintf(&b, "Project: %s in %s.\n",
		orFallback(s.Basics.ProjectType, "(Type)"),
		orFallback(s.Basics.City, "(City)"))
	fmt.Fprintf(&b, "Scope: %s.\n", orFallback(strings.Join(s.Scope, ", "), "(Select Scope)"))
	fmt.Fprintf(&b, "Accreditation: %s.\n", orFallback(strings.Join(s.Accreditation, ", "), "(Optional)"))
	fmt.Fprintf(&b, "Timeline: %s, Budget: %s.\n",
		orFallback(s.Timeline, "(Timeline)"),
		orFallback(s.Budget, "(Budget)"))
	b.WriteString("Please schedule a discovery call.")
	return "https://wa.me/" + whatsappNumber + "?text=" + escape(b.String())
}

func orFallback(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// escape percent-encodes for URL query components; QueryEscape's "+" for
// spaces is not understood by mail and chat clients.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
