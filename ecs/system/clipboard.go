package system

import (
	"log"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// copyRows puts the painted layout rows on the system clipboard, ready to
// paste into a level file. Without a clipboard it only logs.
func copyRows(rows []string) {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("debug: clipboard unavailable: %v", err)
			return
		}
		clipboardOK = true
	})
	if !clipboardOK || len(rows) == 0 {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strings.Join(rows, ",\n")))
}
