package email

// SendWelcomeEmail sends the post-registration welcome email.
func (c *Client) SendWelcomeEmail(to, username string) error {
	data := map[string]string{
		"Username": username,
	}

	return c.SendEmail(
		to,
		"Welcome to Catalog!",
		TemplateWelcome,
		data,
	)
}
