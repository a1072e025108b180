package x11

import (
	"codeberg.org/seppun/seppun-kb/pkg/keyboard"
	"codeberg.org/seppun/seppun-kb/pkg/xkb"
	"fmt"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	xkbEvents   = xkb.EventTypeNewKeyboardNotify | xkb.EventTypeMapNotify | xkb.EventTypeStateNotify
	xkbMapParts = xkb.MapPartKeyTypes | xkb.MapPartKeySyms | xkb.MapPartModifierMap
)

func (c *Client) initXkb() error {
	err := xkb.Init(c.conn)
	if err != nil {
		return err
	}

	reply, err := xkb.UseExtension(c.conn, xkb.MajorVersion, xkb.MinorVersion).Reply()
	if err != nil {
		return fmt.Errorf("use extension: %w", err)
	}
	if !reply.Supported {
		return fmt.Errorf("server xkb %d.%d does not support %d.%d",
			reply.ServerMajor, reply.ServerMinor, xkb.MajorVersion, xkb.MinorVersion)
	}

	err = xkb.SelectEventsChecked(c.conn, xkb.IdUseCoreKbd, xkbEvents, 0, xkbEvents, xkbMapParts, xkbMapParts).Check()
	if err != nil {
		return fmt.Errorf("select events: %w", err)
	}

	return nil
}

func (c *Client) KeyboardMapping() (*keyboard.Mapping, error) {
	setup := c.xu.Setup()
	min, max := setup.MinKeycode, setup.MaxKeycode

	reply, err := xproto.GetKeyboardMapping(c.conn, min, byte(max-min+1)).Reply()
	if err != nil {
		return nil, fmt.Errorf("get keyboard mapping: %w", err)
	}

	return keyboard.NewMapping(min, max, reply), nil
}

func (c *Client) KeyboardState() (*keyboard.State, error) {
	reply, err := xkb.GetState(c.conn, xkb.IdUseCoreKbd).Reply()
	if err != nil {
		return nil, fmt.Errorf("get xkb state: %w", err)
	}

	return keyboard.NewState(reply), nil
}
