// Command demoserver starts the posts fixture server.
// Usage: go run ./cmd/demoserver [-addr :9999] [-store memory|sqlite] [-db posts.db]
package main

import (
	"flag"
	"fmt"
	"log"

	_ "github.com/raysh454/posty/docs" // swagger registration

	"github.com/raysh454/posty/internal/demoserver"
	"github.com/raysh454/posty/internal/logging"
)

func main() {
	cfg := demoserver.DefaultConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "post store backend: memory|sqlite")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path (store=sqlite)")
	flag.Parse()

	logger := logging.NewStdoutLogger("DemoServer")

	srv, err := demoserver.NewFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("demoserver: %v", err)
	}
	defer srv.Close()

	fmt.Println("===========================================")
	fmt.Println("   Posty Demo Server - posts fixture")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Printf("Serving the posts API on %s\n", cfg.Addr)
	fmt.Printf("Swagger UI at http://localhost%s/swagger/index.html\n", cfg.Addr)
	fmt.Println()
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /posts              (optional ?userId=)")
	fmt.Println("  GET  /posts/{id}")
	fmt.Println("  POST /posts              (JSON or form-encoded)")
	fmt.Println("  POST /demo/reset")
	fmt.Println("  GET  /demo/posts/count")

	if err := srv.Start(); err != nil {
		log.Fatalf("demoserver: %v", err)
	}
}
