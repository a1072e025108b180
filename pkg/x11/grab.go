package x11

import (
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"github.com/BurntSushi/xgb/xproto"
)

func (c *Client) GrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	return xproto.GrabKeyChecked(c.conn, true, c.root, uint16(mods), keycode,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
}

func (c *Client) UngrabKey(keycode xproto.Keycode, mods binding.Modifiers) error {
	return xproto.UngrabKeyChecked(c.conn, keycode, c.root, uint16(mods)).Check()
}
