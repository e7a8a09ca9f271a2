package main

import (
	"blogfeed/client"
	"blogfeed/config"
	"blogfeed/display"
	"net/http"
	"time"
)

func CreateDisplayServer(cfg config.DisplayConfig) (*http.Server, *display.View) {
	contentClient := client.New(cfg.ContentURL, cfg.Origin, nil)
	view, reloader := display.NewLiveView(contentClient)

	handler := &display.HTTPHandler{View: view, Reloader: reloader}

	return &http.Server{
		Handler:     withAccessLog(handler.Router()),
		Addr:        "0.0.0.0:" + cfg.Port,
		ReadTimeout: 15 * time.Second,
	}, view
}
