package requests

type EmailPayload struct {
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	Body    string   `json:"body"`

	AttachmentName        string `json:"attachment_name,omitempty"`
	AttachmentContentType string `json:"attachment_content_type,omitempty"`
	AttachmentBase64      string `json:"attachment_base64,omitempty"`
}
