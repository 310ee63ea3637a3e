package main

import (
	"flag"
	"log"
	"time"

	"github.com/indigo-web/indigo"
	"github.com/indigo-web/indigo/config"
	"github.com/indigo-web/urlround/internal/app"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.Parse()

	s := config.Default()
	s.NET.ReadTimeout = time.Hour

	server := indigo.New(*addr).
		Tune(s).
		OnBind(func(addr string) {
			log.Printf("running on %s\n", addr)
		})

	log.Fatal(server.Serve(app.Router()))
}
