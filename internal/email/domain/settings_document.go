package domain

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/mejla/internal/crypto/domain"
	appValidation "github.com/allisson/mejla/internal/validation"
)

// SettingsDocument is the storable form of EncryptedSettings. It is also the
// input for building new encrypted settings.
type SettingsDocument struct {
	AppPassword   *cryptoDomain.EncryptedAppPassword `json:"smtp_app_password"`
	Salt          cryptoDomain.Salt                  `json:"salt"`
	Template      Template                           `json:"template"`
	ReplyTo       *Account                           `json:"reply_to,omitempty"`
	SMTPServer    SMTPServer                         `json:"smtp_server"`
	Sender        Account                            `json:"sender"`
	Recipients    AddressSet                         `json:"recipients"`
	CcRecipients  AddressSet                         `json:"cc_recipients"`
	BccRecipients AddressSet                         `json:"bcc_recipients"`
}

// DefaultSettingsDocument returns the starting point for a profile that has
// never been configured. It does not validate until every field is filled in.
func DefaultSettingsDocument() SettingsDocument {
	return SettingsDocument{
		Template:   DefaultTemplate(),
		SMTPServer: DefaultSMTPServer,
	}
}

// NewSettingsDocument copies s into a document. Only encrypted settings can be
// turned into a document.
func NewSettingsDocument(s *EncryptedSettings) SettingsDocument {
	return SettingsDocument{
		AppPassword:   s.appPassword.Clone(),
		Salt:          s.salt,
		Template:      s.template,
		ReplyTo:       cloneAccount(s.replyTo),
		SMTPServer:    s.smtpServer,
		Sender:        s.sender,
		Recipients:    s.recipients.Clone(),
		CcRecipients:  s.ccRecipients.Clone(),
		BccRecipients: s.bccRecipients.Clone(),
	}
}

// Zero wipes the sealed app password and the salt held by the document.
func (d *SettingsDocument) Zero() {
	d.AppPassword.Zero()
	d.Salt.Zero()
}

// Validate checks the document can become EncryptedSettings.
func (d *SettingsDocument) Validate() error {
	if d.Recipients.IsEmpty() {
		return ErrRecipientAddressesCannotBeEmpty
	}

	err := validation.ValidateStruct(d,
		validation.Field(&d.AppPassword, validation.Required.Error("app password is required")),
		validation.Field(&d.Salt, validation.By(func(value any) error {
			if s, _ := value.(cryptoDomain.Salt); s.IsZero() {
				return validation.NewError("validation_salt", "salt is required")
			}
			return nil
		})),
		validation.Field(&d.SMTPServer, validation.By(validateSMTPServer)),
		validation.Field(&d.Sender, validation.By(validateAccount)),
		validation.Field(&d.ReplyTo, validation.By(validateAccount)),
	)
	return appValidation.WrapValidationError(ErrInvalidSettings, err)
}

// Settings validates the document and builds EncryptedSettings from it.
func (d SettingsDocument) Settings() (*EncryptedSettings, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &EncryptedSettings{
		appPassword:   d.AppPassword.Clone(),
		salt:          d.Salt,
		template:      d.Template,
		replyTo:       cloneAccount(d.ReplyTo),
		smtpServer:    d.SMTPServer,
		sender:        d.Sender,
		recipients:    d.Recipients.Clone(),
		ccRecipients:  d.CcRecipients.Clone(),
		bccRecipients: d.BccRecipients.Clone(),
	}, nil
}

// EncodeSettings serializes s as a SettingsDocument. It is the only encoder for
// settings and takes encrypted settings only.
func EncodeSettings(s *EncryptedSettings) ([]byte, error) {
	doc := NewSettingsDocument(s)
	defer doc.Zero()
	return json.Marshal(doc)
}

// DecodeSettings parses and validates a SettingsDocument into encrypted settings.
func DecodeSettings(data []byte) (*EncryptedSettings, error) {
	var doc SettingsDocument
	defer doc.Zero()
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Settings()
}
