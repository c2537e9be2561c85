package keyseq

// KeyType enumerates the non-rune keys a sequence can bind against. Unlike
// the teacher's termbox-backed KeyType, this is a plain local enum: the
// picker's own terminal backend (built on tcell) maps its decoded keys onto
// these values itself, keeping this package free of any particular
// terminal library.
type KeyType int

const (
	KeyNone KeyType = iota
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeySpace
)

var keyToString = map[KeyType]string{
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyInsert: "Insert", KeyDelete: "Delete", KeyHome: "Home", KeyEnd: "End",
	KeyPgup: "Pgup", KeyPgdn: "Pgdn",
	KeyArrowUp: "Up", KeyArrowDown: "Down", KeyArrowLeft: "Left", KeyArrowRight: "Right",
	KeyEnter: "Enter", KeyEsc: "Esc", KeyTab: "Tab", KeyBacktab: "Backtab",
	KeyBackspace: "Backspace", KeySpace: "Space",
}

// ctrlLetters names KeyCtrlA..KeyCtrlZ in declaration order; there are no
// KeyCtrlI or KeyCtrlM constants, so those two letters are absent.
const ctrlLetters = "abcdefghjklnopqrstuvwxyz"

func init() {
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		name := "C-" + string(ctrlLetters[k-KeyCtrlA])
		keyToString[k] = name
		stringToKey[name] = k
	}
}

var stringToKey = func() map[string]KeyType {
	m := make(map[string]KeyType, len(keyToString))
	for k, v := range keyToString {
		m[v] = k
	}
	return m
}()

// ToString returns the name registered for k, or "" if k is unnamed.
func ToString(k KeyType) string {
	return keyToString[k]
}

// ToKeyType looks up the KeyType registered under name.
func ToKeyType(name string) (KeyType, bool) {
	k, ok := stringToKey[name]
	return k, ok
}
