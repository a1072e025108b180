package x11

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"os"
)

var ErrNoDisplay = errors.New("no X display available")

type Client struct {
	xu   *xgbutil.XUtil
	conn *xgb.Conn
	root xproto.Window
}

func Connect(display string) (*Client, error) {
	display, err := DisplayName(display)
	if err != nil {
		return nil, err
	}

	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to display %s: %w", display, err)
	}

	c := &Client{xu: xu, conn: xu.Conn(), root: xu.RootWin()}

	err = c.initXkb()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init xkb: %w", err)
	}

	err = c.selectKeyEvents()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("select key events: %w", err)
	}

	return c, nil
}

func DisplayName(display string) (string, error) {
	if display != "" {
		return display, nil
	}

	display = os.Getenv("DISPLAY")
	if display == "" {
		return "", fmt.Errorf("DISPLAY is not set, %w", ErrNoDisplay)
	}

	return display, nil
}

func (c *Client) Close() error {
	c.conn.Close()
	return nil
}

func (c *Client) Root() xproto.Window {
	return c.root
}

// WaitForEvent blocks for the next event or asynchronous error. Both are nil
// once the connection is closed.
func (c *Client) WaitForEvent() (xgb.Event, xgb.Error) {
	return c.conn.WaitForEvent()
}

// Flush waits until the server has processed every request sent so far.
func (c *Client) Flush() {
	c.xu.Sync()
}

func (c *Client) selectKeyEvents() error {
	mask := []uint32{xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease}
	return xproto.ChangeWindowAttributesChecked(c.conn, c.root, xproto.CwEventMask, mask).Check()
}
