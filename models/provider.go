package models

// Wire types for the delivery provider's REST surface. Field names follow the
// provider's v3 API; every request is authenticated with the account username
// and API key via HTTP basic auth.

// EmailAddress is a named recipient address.
type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EmailFrom is the verified sender identity, referenced by its provider-side
// address id rather than a raw address.
type EmailFrom struct {
	EmailAddressID int64  `json:"email_address_id"`
	Name           string `json:"name"`
}

// EmailAttachment is a base64-encoded file attached to an outbound email.
type EmailAttachment struct {
	Content     string `json:"content"`
	Type        string `json:"type"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition"`
}

// EmailMessage is the payload of the send-email operation.
type EmailMessage struct {
	To          []EmailAddress    `json:"to"`
	From        EmailFrom         `json:"from"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	Attachments []EmailAttachment `json:"attachments,omitempty"`
}

// UploadRequest carries a base64-encoded file to the provider's blob store.
type UploadRequest struct {
	Content string `json:"content"`
}

// UploadResponse returns the reference URL of an uploaded file.
type UploadResponse struct {
	Data struct {
		URL string `json:"_url"`
	} `json:"data"`
}

// ReturnAddress is one of the account's configured physical return addresses.
type ReturnAddress struct {
	ReturnAddressID int64  `json:"return_address_id"`
	AddressName     string `json:"address_name"`
	AddressLine1    string `json:"address_line_1"`
	AddressCity     string `json:"address_city"`
	AddressState    string `json:"address_state"`
	AddressPostal   string `json:"address_postal_code"`
	AddressCountry  string `json:"address_country"`
}

// ReturnAddressListResponse is the paginated list-return-addresses envelope.
type ReturnAddressListResponse struct {
	Data struct {
		Data []ReturnAddress `json:"data"`
	} `json:"data"`
}

// LetterRecipient is the destination address of a physical letter.
type LetterRecipient struct {
	AddressName       string `json:"address_name"`
	AddressLine1      string `json:"address_line_1"`
	AddressLine2      string `json:"address_line_2,omitempty"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	AddressPostalCode string `json:"address_postal_code"`
	AddressCountry    string `json:"address_country"`
	ReturnAddressID   int64  `json:"return_address_id"`
}

// Letter is the payload of the price-letter and send-letter operations. The
// zero values of PriorityPost, TemplateUsed, Colour and Duplex select standard
// priority, no template, black-and-white, single-sided.
type Letter struct {
	FileURL      string            `json:"file_url"`
	PriorityPost int               `json:"priority_post"`
	Recipients   []LetterRecipient `json:"recipients"`
	TemplateUsed int               `json:"template_used"`
	Colour       int               `json:"colour"`
	Duplex       int               `json:"duplex"`
}

// LetterPriceResponse is the pricing envelope of the price-letter operation.
type LetterPriceResponse struct {
	Data struct {
		TotalPrice float64 `json:"total_price"`
		Currency   struct {
			Prefix string `json:"currency_prefix_d"`
		} `json:"_currency"`
	} `json:"data"`
}

// SMSMessage is one outbound text notification.
type SMSMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SMSCollection is the payload of the send-sms operation.
type SMSCollection struct {
	Messages []SMSMessage `json:"messages"`
}
