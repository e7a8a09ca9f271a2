package display

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	ReloadPath = "/__reload"

	reloadMessage = "reload"
	writeWait     = time.Second
)

type LiveReloaderInterface interface {
	BroadcastReload()
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader tells pages rendered while the view was pending to
// re-render. settled reports whether the view has left the pending
// state; a page connecting after that is reloaded on connect, since it
// missed the broadcast.
type LiveReloader struct {
	settled  func() bool
	pages    map[*websocket.Conn]struct{}
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

// NewLiveReloader returns a reloader; a nil settled is treated as never
// settled, so pages only reload on BroadcastReload.
func NewLiveReloader(settled func() bool) *LiveReloader {
	if settled == nil {
		settled = func() bool { return false }
	}
	return &LiveReloader{
		settled: settled,
		pages:   make(map[*websocket.Conn]struct{}),
	}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade reload connection: %s", err.Error())
		return
	}

	// The view flips out of pending before it broadcasts, so checking
	// under lr.lock means a page either sees the state settled here or
	// is registered in time for the broadcast.
	lr.lock.Lock()
	if lr.settled() {
		lr.lock.Unlock()
		if err := send(conn); err != nil {
			log.Printf("Failed to reload page on connect: %s", err.Error())
		}
		conn.Close()
		return
	}
	lr.pages[conn] = struct{}{}
	lr.lock.Unlock()

	go lr.drain(conn)
}

func (lr *LiveReloader) drain(conn *websocket.Conn) {
	defer lr.forget(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (lr *LiveReloader) forget(conn *websocket.Conn) {
	lr.lock.Lock()
	delete(lr.pages, conn)
	lr.lock.Unlock()
	conn.Close()
}

func (lr *LiveReloader) BroadcastReload() {
	lr.lock.Lock()
	defer lr.lock.Unlock()

	for conn := range lr.pages {
		if err := send(conn); err != nil {
			conn.Close()
			delete(lr.pages, conn)
		}
	}
}

func (lr *LiveReloader) Clients() int {
	lr.lock.Lock()
	defer lr.lock.Unlock()
	return len(lr.pages)
}

func send(conn *websocket.Conn) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage))
}
