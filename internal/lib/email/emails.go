package email

// SendAdmissionReceivedEmail acknowledges an application to the applicant.
func (c *Client) SendAdmissionReceivedEmail(to, studentName, classApplying, applicationID string) error {
	data := map[string]string{
		"StudentName":   studentName,
		"ClassApplying": classApplying,
		"ApplicationID": applicationID,
	}

	return c.SendEmail(
		to,
		"We received the application for "+studentName,
		TemplateAdmissionReceived,
		data,
	)
}

// SendContactReceivedEmail forwards a contact form message to the school office.
func (c *Client) SendContactReceivedEmail(to, name, replyTo, subject, message string) error {
	data := map[string]string{
		"Name":    name,
		"Email":   replyTo,
		"Subject": subject,
		"Message": message,
	}

	return c.SendEmail(
		to,
		"New contact message: "+subject,
		TemplateContactReceived,
		data,
	)
}
