package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateAdmissionReceived corresponds to templates/admission_received.html
	TemplateAdmissionReceived Template = "admission_received"

	// TemplateContactReceived corresponds to templates/contact_received.html
	TemplateContactReceived Template = "contact_received"
)
