package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/gochoam/phosphor-splitpanel/util/uiutil/event"
)

// Constants from /usr/include/X11/keysymdef.h
func translateXKeysymToEventKeySym(xk xproto.Keysym) event.KeySym {
	switch xk {
	case 0x30:
		return event.KSym0
	case 0x31:
		return event.KSym1
	case 0x32:
		return event.KSym2
	case 0x33:
		return event.KSym3
	case 0x34:
		return event.KSym4
	case 0x35:
		return event.KSym5
	case 0x36:
		return event.KSym6
	case 0x37:
		return event.KSym7
	case 0x38:
		return event.KSym8
	case 0x39:
		return event.KSym9

	case 0x41, 0x61:
		return event.KSymA
	case 0x42, 0x62:
		return event.KSymB
	case 0x43, 0x63:
		return event.KSymC
	case 0x44, 0x64:
		return event.KSymD
	case 0x45, 0x65:
		return event.KSymE
	case 0x46, 0x66:
		return event.KSymF
	case 0x47, 0x67:
		return event.KSymG
	case 0x48, 0x68:
		return event.KSymH
	case 0x49, 0x69:
		return event.KSymI
	case 0x4a, 0x6a:
		return event.KSymJ
	case 0x4b, 0x6b:
		return event.KSymK
	case 0x4c, 0x6c:
		return event.KSymL
	case 0x4d, 0x6d:
		return event.KSymM
	case 0x4e, 0x6e:
		return event.KSymN
	case 0x4f, 0x6f:
		return event.KSymO
	case 0x50, 0x70:
		return event.KSymP
	case 0x51, 0x71:
		return event.KSymQ
	case 0x52, 0x72:
		return event.KSymR
	case 0x53, 0x73:
		return event.KSymS
	case 0x54, 0x74:
		return event.KSymT
	case 0x55, 0x75:
		return event.KSymU
	case 0x56, 0x76:
		return event.KSymV
	case 0x57, 0x77:
		return event.KSymW
	case 0x58, 0x78:
		return event.KSymX
	case 0x59, 0x79:
		return event.KSymY
	case 0x5a, 0x7a:
		return event.KSymZ

	case 0x20:
		return event.KSymSpace
	case 0xff08:
		return event.KSymBackspace
	case 0xff0d:
		return event.KSymReturn
	case 0xff1b:
		return event.KSymEscape
	case 0xff50:
		return event.KSymHome
	case 0xff51:
		return event.KSymLeft
	case 0xff52:
		return event.KSymUp
	case 0xff53:
		return event.KSymRight
	case 0xff54:
		return event.KSymDown
	case 0xff55:
		return event.KSymPageUp
	case 0xff56:
		return event.KSymPageDown
	case 0xff57:
		return event.KSymEnd
	case 0xff63:
		return event.KSymInsert
	case 0xffe1:
		return event.KSymShiftL
	case 0xffe2:
		return event.KSymShiftR
	case 0xffe3:
		return event.KSymControlL
	case 0xffe4:
		return event.KSymControlR
	case 0xffe9:
		return event.KSymAltL
	case 0xffea:
		return event.KSymAltR
	case 0xfe03:
		return event.KSymAltGr // ISOLevel3Shift
	case 0xffeb:
		return event.KSymSuperL // windows key
	case 0xffec:
		return event.KSymSuperR
	case 0xffff:
		return event.KSymDelete
	case 0xff09:
		return event.KSymTab
	case 0xfe20:
		return event.KSymTabLeft // ISOLeftTab

	case 0xff7f:
		return event.KSymNumLock
	case 0xffe5:
		return event.KSymCapsLock

	case 0xffbe:
		return event.KSymF1
	case 0xffbf:
		return event.KSymF2
	case 0xffc0:
		return event.KSymF3
	case 0xffc1:
		return event.KSymF4
	case 0xffc2:
		return event.KSymF5
	case 0xffc3:
		return event.KSymF6
	case 0xffc4:
		return event.KSymF7
	case 0xffc5:
		return event.KSymF8
	case 0xffc6:
		return event.KSymF9
	case 0xffc7:
		return event.KSymF10
	case 0xffc8:
		return event.KSymF11
	case 0xffc9:
		return event.KSymF12
	}
	return event.KSymNone
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskMod1, event.Mod1},
		{xproto.KeyButMaskMod2, event.Mod2},
		{xproto.KeyButMaskMod3, event.Mod3},
		{xproto.KeyButMaskMod4, event.Mod4},
		{xproto.KeyButMaskMod5, event.Mod5},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
		{xproto.KeyButMaskButton5 << 1, event.ButtonWheelLeft},
		{xproto.KeyButMaskButton5 << 2, event.ButtonWheelRight},
		{xproto.KeyButMaskButton5 << 3, event.ButtonBackward},
		// event sends uint16 (no support for forward?)
		//{xproto.KeyButMaskButton5 << 4, event.ButtonForward},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	var b event.MouseButton
	switch xb {
	case 1:
		b = event.ButtonLeft
	case 2:
		b = event.ButtonMiddle
	case 3:
		b = event.ButtonRight
	case 4:
		b = event.ButtonWheelUp
	case 5:
		b = event.ButtonWheelDown
	case 6:
		b = event.ButtonWheelLeft
	case 7:
		b = event.ButtonWheelRight
	case 8:
		b = event.ButtonBackward
	case 9:
		b = event.ButtonForward
	}
	return b
}
