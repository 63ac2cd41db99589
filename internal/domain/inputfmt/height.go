// Package inputfmt formats the height field while the user types into it.
package inputfmt

import "strings"

const maxHeightDigits = 3

// Editable is the part of a text field the formatter needs.
type Editable interface {
	Text() string
	SetText(text string)
	SetSelection(pos int)
}

// FormatHeight turns free text into "D", "D.D" or "D.DD". Only the digits of
// text are considered and the leading one must be 0 or 1.
func FormatHeight(text string) string {
	digits := onlyDigits(text)
	if digits == "" {
		return ""
	}

	if !validLead(digits[0]) {
		digits = digits[:len(digits)-1]
		if digits == "" || !validLead(digits[0]) {
			return ""
		}
	}

	if len(digits) == 1 {
		return digits
	}
	if len(digits) > maxHeightDigits {
		digits = digits[:maxHeightDigits]
	}
	return digits[:1] + "." + digits[1:]
}

// Formatter applies FormatHeight from a text-changed callback. Setting the
// text from inside the callback notifies the field's listeners again; those
// nested notifications are ignored.
type Formatter struct {
	formatting bool
}

func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) AfterTextChanged(e Editable) {
	if f.formatting {
		return
	}
	f.formatting = true
	defer func() { f.formatting = false }()

	formatted := FormatHeight(e.Text())
	e.SetText(formatted)
	e.SetSelection(len(formatted))
}

func (f *Formatter) Formatting() bool {
	return f.formatting
}

func onlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func validLead(c byte) bool {
	return c == '0' || c == '1'
}
