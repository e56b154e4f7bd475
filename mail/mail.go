// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"mime"
	stdmail "net/mail"
	"regexp"
	"strings"

	"github.com/emersion/go-message/charset"
)

type HeaderInfos struct {
	MessageID  string
	Subject    string
	From       string
	To         []string
	Cc         []string
	InReplyTo  []string
	References []string
}

var wordDecoder = &mime.WordDecoder{
	CharsetReader: charset.Reader,
}

func MailHeaderInfos(rawMail []byte) (*HeaderInfos, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return nil, fmt.Errorf("could not parse mail: %w", err)
	}

	subject, err := DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		return nil, fmt.Errorf("could decode subject header: %w", err)
	}

	infos := &HeaderInfos{
		MessageID:  CleanMessageID(msg.Header.Get("Message-Id")),
		Subject:    subject,
		To:         addresses(msg.Header, "To"),
		Cc:         addresses(msg.Header, "Cc"),
		InReplyTo:  MessageIDList(msg.Header.Get("In-Reply-To")),
		References: MessageIDList(msg.Header.Get("References")),
	}
	if from := addresses(msg.Header, "From"); len(from) > 0 {
		infos.From = from[0]
	}

	return infos, nil
}

func DecodeHeader(value string) (string, error) {
	return wordDecoder.DecodeHeader(value)
}

func addresses(h stdmail.Header, key string) []string {
	list, err := h.AddressList(key)
	if err != nil {
		// fall back to the raw value, broken headers are common
		raw := strings.TrimSpace(h.Get(key))
		if len(raw) == 0 {
			return nil
		}
		return []string{strings.ToLower(raw)}
	}

	result := make([]string, 0, len(list))
	for _, a := range list {
		result = append(result, strings.ToLower(a.Address))
	}
	return result
}

// CleanMessageID strips whitespace and the angle brackets.
func CleanMessageID(messageID string) string {
	id := strings.TrimSpace(messageID)
	id = strings.TrimPrefix(id, "<")
	id = strings.TrimSuffix(id, ">")
	return strings.TrimSpace(id)
}

// RFCMessageID wraps a cleaned id in angle brackets for header searches.
func RFCMessageID(messageID string) string {
	return "<" + CleanMessageID(messageID) + ">"
}

var messageIDPattern = regexp.MustCompile(`<[^<>]+>`)

// MessageIDList parses In-Reply-To and References style headers.
func MessageIDList(header string) []string {
	ids := []string{}
	for _, m := range messageIDPattern.FindAllString(header, -1) {
		if id := CleanMessageID(m); len(id) > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		if id := CleanMessageID(header); len(id) > 0 && !strings.ContainsAny(id, " \t") {
			ids = append(ids, id)
		}
	}
	return ids
}

// SyntheticMessageID is used for mails that come without a Message-Id.
func SyntheticMessageID(rawMail []byte) string {
	return fmt.Sprintf("%x@imapsync", sha256.Sum256(rawMail))
}

// PlusPart returns the "+suffix" of address when it is a plus address of
// emailUsername, e.g. support+billing@example.com gives "billing".
func PlusPart(address string, emailUsername string) string {
	at := strings.LastIndex(emailUsername, "@")
	if at < 0 {
		return ""
	}
	local, domain := emailUsername[:at], emailUsername[at:]
	pattern := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(local) + `\+([^@]+)` + regexp.QuoteMeta(domain) + `$`)
	m := pattern.FindStringSubmatch(strings.TrimSpace(address))
	if m == nil {
		return ""
	}
	return m[1]
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}
