// Package xkb is a small client for the XKEYBOARD extension, covering what a
// key grabbing daemon needs: version negotiation, event selection, state
// queries and the keyboard state, map and device notifications.
//
// It follows the layout of the extension packages in github.com/BurntSushi/xgb,
// which does not ship one for XKEYBOARD.
package xkb

import (
	"fmt"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

const extName = "XKEYBOARD"

const (
	MajorVersion = 1
	MinorVersion = 0
)

// IdUseCoreKbd addresses the core keyboard device in device spec fields.
const IdUseCoreKbd = 0x100

// Event type bits for SelectEvents and the xkbType of each event.
const (
	EventTypeNewKeyboardNotify = 1 << 0
	EventTypeMapNotify         = 1 << 1
	EventTypeStateNotify       = 1 << 2

	NewKeyboardNotify = 0
	MapNotify         = 1
	StateNotify       = 2
)

// Map part bits for SelectEvents and MapNotifyEvent.Changed.
const (
	MapPartKeyTypes           = 1 << 0
	MapPartKeySyms            = 1 << 1
	MapPartModifierMap        = 1 << 2
	MapPartExplicitComponents = 1 << 3
	MapPartKeyActions         = 1 << 4
	MapPartKeyBehaviors       = 1 << 5
	MapPartVirtualMods        = 1 << 6
	MapPartVirtualModMap      = 1 << 7
)

// Init must be called before using the XKEYBOARD extension.
func Init(c *xgb.Conn) error {
	reply, err := xproto.QueryExtension(c, uint16(len(extName)), extName).Reply()
	switch {
	case err != nil:
		return err
	case !reply.Present:
		return fmt.Errorf("no extension named %s on the server", extName)
	}

	c.ExtLock.Lock()
	c.Extensions[extName] = reply.MajorOpcode
	c.ExtLock.Unlock()
	for evNum, fun := range xgb.NewExtEventFuncs[extName] {
		xgb.NewEventFuncs[int(reply.FirstEvent)+evNum] = fun
	}
	for errNum, fun := range xgb.NewExtErrorFuncs[extName] {
		xgb.NewErrorFuncs[int(reply.FirstError)+errNum] = fun
	}
	return nil
}

func init() {
	xgb.NewExtEventFuncs[extName] = map[int]xgb.NewEventFun{0: eventNew}
	xgb.NewExtErrorFuncs[extName] = map[int]xgb.NewErrorFun{0: KeyboardErrorNew}
}

// All XKB events share one event code and are told apart by the second byte.
func eventNew(buf []byte) xgb.Event {
	switch buf[1] {
	case NewKeyboardNotify:
		return NewKeyboardNotifyEventNew(buf)
	case MapNotify:
		return MapNotifyEventNew(buf)
	case StateNotify:
		return StateNotifyEventNew(buf)
	}
	return UnknownEvent{XkbType: buf[1], Sequence: xgb.Get16(buf[2:]), raw: append([]byte(nil), buf[:32]...)}
}

// UnknownEvent carries XKB events this package does not decode.
type UnknownEvent struct {
	XkbType  byte
	Sequence uint16
	raw      []byte
}

func (v UnknownEvent) Bytes() []byte { return v.raw }

func (v UnknownEvent) String() string {
	return fmt.Sprintf("XkbUnknown {XkbType: %d, Sequence: %d}", v.XkbType, v.Sequence)
}

// NewKeyboardNotifyEvent is sent when the core keyboard device is replaced
// or its keycode range changes.
type NewKeyboardNotifyEvent struct {
	Sequence      uint16
	Time          xproto.Timestamp
	DeviceID      byte
	OldDeviceID   byte
	MinKeyCode    xproto.Keycode
	MaxKeyCode    xproto.Keycode
	OldMinKeyCode xproto.Keycode
	OldMaxKeyCode xproto.Keycode
	RequestMajor  byte
	RequestMinor  byte
	Changed       uint16
}

func NewKeyboardNotifyEventNew(buf []byte) xgb.Event {
	return NewKeyboardNotifyEvent{
		Sequence:      xgb.Get16(buf[2:]),
		Time:          xproto.Timestamp(xgb.Get32(buf[4:])),
		DeviceID:      buf[8],
		OldDeviceID:   buf[9],
		MinKeyCode:    xproto.Keycode(buf[10]),
		MaxKeyCode:    xproto.Keycode(buf[11]),
		OldMinKeyCode: xproto.Keycode(buf[12]),
		OldMaxKeyCode: xproto.Keycode(buf[13]),
		RequestMajor:  buf[14],
		RequestMinor:  buf[15],
		Changed:       xgb.Get16(buf[16:]),
	}
}

func (v NewKeyboardNotifyEvent) Bytes() []byte {
	buf := make([]byte, 32)
	buf[1] = NewKeyboardNotify
	xgb.Put16(buf[2:], v.Sequence)
	xgb.Put32(buf[4:], uint32(v.Time))
	buf[8] = v.DeviceID
	buf[9] = v.OldDeviceID
	buf[10] = byte(v.MinKeyCode)
	buf[11] = byte(v.MaxKeyCode)
	buf[12] = byte(v.OldMinKeyCode)
	buf[13] = byte(v.OldMaxKeyCode)
	buf[14] = v.RequestMajor
	buf[15] = v.RequestMinor
	xgb.Put16(buf[16:], v.Changed)
	return buf
}

func (v NewKeyboardNotifyEvent) String() string {
	return fmt.Sprintf("XkbNewKeyboardNotify {Sequence: %d, DeviceID: %d, OldDeviceID: %d, MinKeyCode: %d, MaxKeyCode: %d, Changed: %d}",
		v.Sequence, v.DeviceID, v.OldDeviceID, v.MinKeyCode, v.MaxKeyCode, v.Changed)
}

// MapNotifyEvent is sent when parts of the keyboard mapping change.
type MapNotifyEvent struct {
	Sequence      uint16
	Time          xproto.Timestamp
	DeviceID      byte
	PtrBtnActions byte
	Changed       uint16
	MinKeyCode    xproto.Keycode
	MaxKeyCode    xproto.Keycode
	FirstType     byte
	NTypes        byte
	FirstKeySym   xproto.Keycode
	NKeySyms      byte
}

func MapNotifyEventNew(buf []byte) xgb.Event {
	return MapNotifyEvent{
		Sequence:      xgb.Get16(buf[2:]),
		Time:          xproto.Timestamp(xgb.Get32(buf[4:])),
		DeviceID:      buf[8],
		PtrBtnActions: buf[9],
		Changed:       xgb.Get16(buf[10:]),
		MinKeyCode:    xproto.Keycode(buf[12]),
		MaxKeyCode:    xproto.Keycode(buf[13]),
		FirstType:     buf[14],
		NTypes:        buf[15],
		FirstKeySym:   xproto.Keycode(buf[16]),
		NKeySyms:      buf[17],
	}
}

func (v MapNotifyEvent) Bytes() []byte {
	buf := make([]byte, 32)
	buf[1] = MapNotify
	xgb.Put16(buf[2:], v.Sequence)
	xgb.Put32(buf[4:], uint32(v.Time))
	buf[8] = v.DeviceID
	buf[9] = v.PtrBtnActions
	xgb.Put16(buf[10:], v.Changed)
	buf[12] = byte(v.MinKeyCode)
	buf[13] = byte(v.MaxKeyCode)
	buf[14] = v.FirstType
	buf[15] = v.NTypes
	buf[16] = byte(v.FirstKeySym)
	buf[17] = v.NKeySyms
	return buf
}

func (v MapNotifyEvent) String() string {
	return fmt.Sprintf("XkbMapNotify {Sequence: %d, DeviceID: %d, Changed: %#x, FirstKeySym: %d, NKeySyms: %d}",
		v.Sequence, v.DeviceID, v.Changed, v.FirstKeySym, v.NKeySyms)
}

// StateNotifyEvent reports modifier and group changes of a keyboard.
type StateNotifyEvent struct {
	Sequence         uint16
	Time             xproto.Timestamp
	DeviceID         byte
	Mods             byte
	BaseMods         byte
	LatchedMods      byte
	LockedMods       byte
	Group            byte
	BaseGroup        int16
	LatchedGroup     int16
	LockedGroup      byte
	CompatState      byte
	GrabMods         byte
	CompatGrabMods   byte
	LookupMods       byte
	CompatLookupMods byte
	PtrBtnState      uint16
	Changed          uint16
	Keycode          xproto.Keycode
	EventType        byte
	RequestMajor     byte
	RequestMinor     byte
}

func StateNotifyEventNew(buf []byte) xgb.Event {
	return StateNotifyEvent{
		Sequence:         xgb.Get16(buf[2:]),
		Time:             xproto.Timestamp(xgb.Get32(buf[4:])),
		DeviceID:         buf[8],
		Mods:             buf[9],
		BaseMods:         buf[10],
		LatchedMods:      buf[11],
		LockedMods:       buf[12],
		Group:            buf[13],
		BaseGroup:        int16(xgb.Get16(buf[14:])),
		LatchedGroup:     int16(xgb.Get16(buf[16:])),
		LockedGroup:      buf[18],
		CompatState:      buf[19],
		GrabMods:         buf[20],
		CompatGrabMods:   buf[21],
		LookupMods:       buf[22],
		CompatLookupMods: buf[23],
		PtrBtnState:      xgb.Get16(buf[24:]),
		Changed:          xgb.Get16(buf[26:]),
		Keycode:          xproto.Keycode(buf[28]),
		EventType:        buf[29],
		RequestMajor:     buf[30],
		RequestMinor:     buf[31],
	}
}

func (v StateNotifyEvent) Bytes() []byte {
	buf := make([]byte, 32)
	buf[1] = StateNotify
	xgb.Put16(buf[2:], v.Sequence)
	xgb.Put32(buf[4:], uint32(v.Time))
	buf[8] = v.DeviceID
	buf[9] = v.Mods
	buf[10] = v.BaseMods
	buf[11] = v.LatchedMods
	buf[12] = v.LockedMods
	buf[13] = v.Group
	xgb.Put16(buf[14:], uint16(v.BaseGroup))
	xgb.Put16(buf[16:], uint16(v.LatchedGroup))
	buf[18] = v.LockedGroup
	buf[19] = v.CompatState
	buf[20] = v.GrabMods
	buf[21] = v.CompatGrabMods
	buf[22] = v.LookupMods
	buf[23] = v.CompatLookupMods
	xgb.Put16(buf[24:], v.PtrBtnState)
	xgb.Put16(buf[26:], v.Changed)
	buf[28] = byte(v.Keycode)
	buf[29] = v.EventType
	buf[30] = v.RequestMajor
	buf[31] = v.RequestMinor
	return buf
}

func (v StateNotifyEvent) String() string {
	return fmt.Sprintf("XkbStateNotify {Sequence: %d, DeviceID: %d, Mods: %#x, Group: %d, Changed: %#x}",
		v.Sequence, v.DeviceID, v.Mods, v.Group, v.Changed)
}

// KeyboardError is the single error defined by XKEYBOARD.
type KeyboardError struct {
	Sequence    uint16
	Value       uint32
	MinorOpcode uint16
	MajorOpcode byte
}

func KeyboardErrorNew(buf []byte) xgb.Error {
	return KeyboardError{
		Sequence:    xgb.Get16(buf[2:]),
		Value:       xgb.Get32(buf[4:]),
		MinorOpcode: xgb.Get16(buf[8:]),
		MajorOpcode: buf[10],
	}
}

func (err KeyboardError) SequenceId() uint16 { return err.Sequence }

func (err KeyboardError) BadId() uint32 { return err.Value }

func (err KeyboardError) Error() string {
	return fmt.Sprintf("BadKeyboard {Sequence: %d, Value: %#x, MinorOpcode: %d}", err.Sequence, err.Value, err.MinorOpcode)
}

// request writes the common header of an XKB request of the given size.
func request(c *xgb.Conn, minor byte, size int) []byte {
	buf := make([]byte, size)
	c.ExtLock.RLock()
	buf[0] = c.Extensions[extName]
	c.ExtLock.RUnlock()
	buf[1] = minor
	xgb.Put16(buf[2:], uint16(size/4))
	return buf
}

func checkInit(c *xgb.Conn, name string) {
	c.ExtLock.RLock()
	defer c.ExtLock.RUnlock()
	if _, ok := c.Extensions[extName]; !ok {
		panic("cannot issue request '" + name + "' using the uninitialized extension 'XKEYBOARD'. xkb.Init(connObj) must be called first.")
	}
}

// UseExtensionCookie is a cookie used only for UseExtension requests.
type UseExtensionCookie struct {
	*xgb.Cookie
}

// UseExtension negotiates the protocol version. It must precede every other
// XKB request on a connection.
func UseExtension(c *xgb.Conn, wantedMajor, wantedMinor uint16) UseExtensionCookie {
	checkInit(c, "UseExtension")
	buf := request(c, 0, 8)
	xgb.Put16(buf[4:], wantedMajor)
	xgb.Put16(buf[6:], wantedMinor)

	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return UseExtensionCookie{cookie}
}

// UseExtensionReply represents the data returned from a UseExtension request.
type UseExtensionReply struct {
	Supported   bool
	Sequence    uint16
	Length      uint32
	ServerMajor uint16
	ServerMinor uint16
}

// Reply blocks and returns the reply data for a UseExtension request.
func (cook UseExtensionCookie) Reply() (*UseExtensionReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return &UseExtensionReply{
		Supported:   buf[1] == 1,
		Sequence:    xgb.Get16(buf[2:]),
		Length:      xgb.Get32(buf[4:]),
		ServerMajor: xgb.Get16(buf[8:]),
		ServerMinor: xgb.Get16(buf[10:]),
	}, nil
}

// SelectEventsCookie is a cookie used only for SelectEvents requests.
type SelectEventsCookie struct {
	*xgb.Cookie
}

// SelectEventsChecked selects XKB events for a device. Event types in
// affectWhich must be fully covered by clear or selectAll; per-detail
// selection is not supported.
func SelectEventsChecked(c *xgb.Conn, deviceSpec, affectWhich, clear, selectAll, affectMap, mapParts uint16) SelectEventsCookie {
	checkInit(c, "SelectEvents")
	if affectWhich&^(clear|selectAll)&^EventTypeMapNotify != 0 {
		panic("xkb.SelectEventsChecked: per-detail event selection is not supported")
	}
	buf := request(c, 1, 16)
	xgb.Put16(buf[4:], deviceSpec)
	xgb.Put16(buf[6:], affectWhich)
	xgb.Put16(buf[8:], clear)
	xgb.Put16(buf[10:], selectAll)
	xgb.Put16(buf[12:], affectMap)
	xgb.Put16(buf[14:], mapParts)

	cookie := c.NewCookie(true, false)
	c.NewRequest(buf, cookie)
	return SelectEventsCookie{cookie}
}

// Check returns an error if one occurred for checked requests that are not
// expecting a reply.
func (cook SelectEventsCookie) Check() error {
	return cook.Cookie.Check()
}

// GetStateCookie is a cookie used only for GetState requests.
type GetStateCookie struct {
	*xgb.Cookie
}

// GetState queries the modifier and group state of a keyboard.
func GetState(c *xgb.Conn, deviceSpec uint16) GetStateCookie {
	checkInit(c, "GetState")
	buf := request(c, 4, 8)
	xgb.Put16(buf[4:], deviceSpec)

	cookie := c.NewCookie(true, true)
	c.NewRequest(buf, cookie)
	return GetStateCookie{cookie}
}

// GetStateReply represents the data returned from a GetState request.
type GetStateReply struct {
	DeviceID         byte
	Sequence         uint16
	Length           uint32
	Mods             byte
	BaseMods         byte
	LatchedMods      byte
	LockedMods       byte
	Group            byte
	LockedGroup      byte
	BaseGroup        int16
	LatchedGroup     int16
	CompatState      byte
	GrabMods         byte
	CompatGrabMods   byte
	LookupMods       byte
	CompatLookupMods byte
	PtrBtnState      uint16
}

// Reply blocks and returns the reply data for a GetState request.
func (cook GetStateCookie) Reply() (*GetStateReply, error) {
	buf, err := cook.Cookie.Reply()
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	return getStateReply(buf), nil
}

func getStateReply(buf []byte) *GetStateReply {
	return &GetStateReply{
		DeviceID:         buf[1],
		Sequence:         xgb.Get16(buf[2:]),
		Length:           xgb.Get32(buf[4:]),
		Mods:             buf[8],
		BaseMods:         buf[9],
		LatchedMods:      buf[10],
		LockedMods:       buf[11],
		Group:            buf[12],
		LockedGroup:      buf[13],
		BaseGroup:        int16(xgb.Get16(buf[14:])),
		LatchedGroup:     int16(xgb.Get16(buf[16:])),
		CompatState:      buf[18],
		GrabMods:         buf[19],
		CompatGrabMods:   buf[20],
		LookupMods:       buf[21],
		CompatLookupMods: buf[22],
		PtrBtnState:      xgb.Get16(buf[24:]),
	}
}
