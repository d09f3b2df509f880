package domain

import (
	"bytes"
	"mime"
	"path/filepath"
)

// PDFMIMEType is the MIME type of PDF attachments.
const PDFMIMEType = "application/pdf"

// Attachment is a named binary file added to an email.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// NewAttachment builds an attachment. An empty mimeType is guessed from the
// file extension, falling back to application/octet-stream.
func NewAttachment(name, mimeType string, data []byte) Attachment {
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(name))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return Attachment{Name: name, MIMEType: mimeType, Data: data}
}

// NewPDFAttachment builds an application/pdf attachment.
func NewPDFAttachment(name string, data []byte) Attachment {
	return NewAttachment(name, PDFMIMEType, data)
}

// Equal reports whether both attachments have the same name, type and content.
func (a Attachment) Equal(other Attachment) bool {
	return a.Name == other.Name && a.MIMEType == other.MIMEType && bytes.Equal(a.Data, other.Data)
}

// Email is an outgoing message, ready to be handed to a sender together with
// Credentials.
type Email struct {
	To          AddressSet
	Cc          AddressSet
	Bcc         AddressSet
	Subject     string
	Body        string
	ReplyTo     *Account
	Attachments []Attachment
}

// Recipients returns every envelope recipient: To, then Cc, then Bcc, without duplicates.
func (e Email) Recipients() AddressSet {
	all := e.To.Clone()
	for _, set := range []AddressSet{e.Cc, e.Bcc} {
		for _, a := range set.items {
			all.Add(a)
		}
	}
	return all
}
