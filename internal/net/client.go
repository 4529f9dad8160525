package net

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"VectorDisplay/internal/render"
	"VectorDisplay/internal/wire"

	"github.com/gorilla/websocket"
)

// Client is the display end of the channel.
type Client struct {
	conn *websocket.Conn
	addr string
}

// Dial connects to the command source at address (host:port).
func Dial(ctx context.Context, address string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: address, Path: Path}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		logger.Errorf("connection to %s failed: %v", u.String(), err)
		return nil, fmt.Errorf("could not connect to %s: %w", address, err)
	}
	logger.Noticef("connected to command source at %s", address)
	return &Client{conn: conn, addr: address}, nil
}

// LocalAddr is the display's side of the connection.
func (c *Client) LocalAddr() string {
	return c.conn.LocalAddr().String()
}

// Run hands every decoded command to handle, in arrival order, until the
// connection drops. Messages that do not decode are dropped.
func (c *Client) Run(handle func(render.Command)) error {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("connection to %s lost: %w", c.addr, err)
		}

		cmd, err := wire.Decode(data)
		if err != nil {
			logger.Debugf("dropping message: %v", err)
			continue
		}
		handle(cmd)
	}
}

// Close says goodbye to the source and closes the connection, which ends Run.
func (c *Client) Close() error {
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
	return c.conn.Close()
}
