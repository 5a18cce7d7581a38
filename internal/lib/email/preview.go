package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData["admission_received"]["StudentName"] == "Aarav Sharma"
var PreviewData = map[Template]map[string]string{
	TemplateAdmissionReceived: {
		"StudentName":   "Aarav Sharma",
		"ClassApplying": "Class VI",
		"ApplicationID": "6b1f9a5e-2c1d-4c8e-9a51-0d6f3b1e7c2a",
	},
	TemplateContactReceived: {
		"Name":    "Neha Verma",
		"Email":   "neha@example.com",
		"Subject": "Transport facility",
		"Message": "Is school transport available from Sector 12?",
	},
}
