package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

func newTextInput(placeholder string, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newTextInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// inputFocus cycles the focus over a fixed set of inputs.
type inputFocus struct {
	inputs []textinput.Model
	focus  int
}

func (f *inputFocus) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputFocus) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputFocus) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}
