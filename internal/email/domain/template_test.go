package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_Materialize(t *testing.T) {
	replacements := []Replacement{
		{Placeholder: "<INV_NO>", Value: "42"},
		{Placeholder: "<FROM_CO>", Value: "Acme"},
	}

	t.Run("default template", func(t *testing.T) {
		subject, body := DefaultTemplate().Materialize(replacements)
		assert.Equal(t, "Invoice 42 from Acme", subject)
		assert.Equal(t, "Invoice 42 from Acme", body)
	})

	t.Run("repeated placeholders", func(t *testing.T) {
		part := TemplatePart("<INV_NO> and <INV_NO>")
		assert.Equal(t, "42 and 42", part.Materialize(replacements))
	})

	t.Run("replacements apply in order", func(t *testing.T) {
		part := TemplatePart("<A>")
		got := part.Materialize([]Replacement{
			{Placeholder: "<A>", Value: "<B>"},
			{Placeholder: "<B>", Value: "done"},
		})
		assert.Equal(t, "done", got)
	})

	t.Run("unknown placeholders stay", func(t *testing.T) {
		part := TemplatePart("Hello <NAME>")
		assert.Equal(t, "Hello <NAME>", part.Materialize(replacements))
	})

	t.Run("empty placeholder is ignored", func(t *testing.T) {
		part := TemplatePart("abc")
		assert.Equal(t, "abc", part.Materialize([]Replacement{{Placeholder: "", Value: "x"}}))
	})
}

func TestNewAttachment(t *testing.T) {
	pdf := NewPDFAttachment("invoice.pdf", []byte{0xde, 0xad, 0xbe, 0xef})
	assert.Equal(t, PDFMIMEType, pdf.MIMEType)

	unknown := NewAttachment("data.unknownext", "", []byte("x"))
	assert.Equal(t, "application/octet-stream", unknown.MIMEType)

	explicit := NewAttachment("notes.txt", "text/plain", []byte("Hello from mejla"))
	assert.Equal(t, "text/plain", explicit.MIMEType)
	assert.True(t, explicit.Equal(NewAttachment("notes.txt", "text/plain", []byte("Hello from mejla"))))
	assert.False(t, explicit.Equal(pdf))
}

func TestEmail_Recipients(t *testing.T) {
	e := Email{
		To:  NewAddressSet(alice, bob),
		Cc:  NewAddressSet(bob, carol),
		Bcc: NewAddressSet(dave),
	}
	assert.Equal(t, []Address{alice, bob, carol, dave}, e.Recipients().Items())
}
