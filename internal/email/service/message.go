package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	emailDomain "github.com/allisson/mejla/internal/email/domain"
)

const base64LineLength = 76

// BuildMessage renders email as an RFC 5322 message sent by from. Bcc recipients
// never appear in the headers.
func BuildMessage(from emailDomain.Account, email emailDomain.Email, date time.Time) ([]byte, error) {
	var buf bytes.Buffer

	h := textproto.MIMEHeader{}
	h.Set("From", from.Mailbox())
	if !email.To.IsEmpty() {
		h.Set("To", strings.Join(email.To.Strings(), ", "))
	}
	if !email.Cc.IsEmpty() {
		h.Set("Cc", strings.Join(email.Cc.Strings(), ", "))
	}
	if email.ReplyTo != nil {
		h.Set("Reply-To", email.ReplyTo.Mailbox())
	}
	h.Set("Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	h.Set("Date", date.Format(time.RFC1123Z))
	h.Set("Message-ID", messageID(from))
	h.Set("MIME-Version", "1.0")

	if len(email.Attachments) == 0 {
		h.Set("Content-Type", "text/plain; charset=utf-8")
		h.Set("Content-Transfer-Encoding", "quoted-printable")
		writeHeader(&buf, h)
		if err := writeQuotedPrintable(&buf, email.Body); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h.Set("Content-Type", mime.FormatMediaType("multipart/mixed", map[string]string{"boundary": mw.Boundary()}))
	writeHeader(&buf, h)

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	textHeader.Set("Content-Transfer-Encoding", "quoted-printable")
	part, err := mw.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if err := writeQuotedPrintable(part, email.Body); err != nil {
		return nil, err
	}

	for _, a := range email.Attachments {
		if err := writeAttachment(mw, a); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, h textproto.MIMEHeader) {
	order := []string{
		"From", "To", "Cc", "Reply-To", "Subject", "Date", "Message-ID",
		"MIME-Version", "Content-Type", "Content-Transfer-Encoding",
	}
	for _, k := range order {
		if v := h.Get(k); v != "" {
			fmt.Fprintf(buf, "%s: %s\r\n", k, v)
		}
	}
	buf.WriteString("\r\n")
}

func writeQuotedPrintable(w io.Writer, s string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := qp.Write([]byte(s)); err != nil {
		return err
	}
	return qp.Close()
}

func writeAttachment(mw *multipart.Writer, a emailDomain.Attachment) error {
	contentType := a.MIMEType
	if _, _, err := mime.ParseMediaType(contentType); err != nil {
		contentType = "application/octet-stream"
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Type", mime.FormatMediaType(contentType, map[string]string{"name": a.Name}))
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Name}))
	h.Set("Content-Transfer-Encoding", "base64")

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(a.Data)
	for len(encoded) > base64LineLength {
		if _, err := fmt.Fprintf(part, "%s\r\n", encoded[:base64LineLength]); err != nil {
			return err
		}
		encoded = encoded[base64LineLength:]
	}
	_, err = fmt.Fprintf(part, "%s\r\n", encoded)
	return err
}

func messageID(from emailDomain.Account) string {
	domain := "localhost"
	if at := strings.LastIndex(from.Email.String(), "@"); at >= 0 {
		domain = from.Email.String()[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.Must(uuid.NewV7()), domain)
}
