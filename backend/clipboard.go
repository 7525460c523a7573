package backend

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// systemClipboard reads and writes the OS clipboard and caches the last known text
// fallback, when set, publishes text the OS clipboard refused (OSC 52 on terminals)
type systemClipboard struct {
	cache    string
	fallback func(text string)
	log      *zap.Logger
}

func newSystemClipboard(log *zap.Logger, fallback func(string)) *systemClipboard {
	return &systemClipboard{log: log, fallback: fallback}
}

func (c *systemClipboard) Text() (string, bool) {
	if !clipboard.Unsupported {
		text, err := clipboard.ReadAll()
		if err == nil {
			c.cache = text
		} else {
			c.log.Debug("clipboard read failed", zap.Error(err))
		}
	}
	return c.cache, c.cache != ""
}

func (c *systemClipboard) SetText(text string) {
	c.cache = text
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			return
		}
		c.log.Debug("clipboard write failed", zap.Error(err))
	}
	if c.fallback != nil {
		c.fallback(text)
	}
}

func (c *systemClipboard) HasText() bool {
	_, ok := c.Text()
	return ok
}
