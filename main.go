package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/alpenrose85-eng/troynik/internal/auth"
	"github.com/alpenrose85-eng/troynik/internal/calc/batch"
	"github.com/alpenrose85-eng/troynik/internal/calc/export"
	"github.com/alpenrose85-eng/troynik/internal/calc/importer"
	"github.com/alpenrose85-eng/troynik/internal/calc/report"
	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
	"github.com/alpenrose85-eng/troynik/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB, table *rd10249.Table) {
	userRepo := repo.NewPostgres(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Users: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	stubH := &stub.Handler{Table: table}
	batchH := &batch.Handler{Table: table}
	importH := &importer.Handler{Table: table}
	exportH := &export.Handler{Table: table}
	reportH := &report.Handler{Table: table}
	tableH := &rd10249.Handler{Table: table}

	secureApi.HandleFunc("/tools/stub/calc", stubH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/stub/batch", batchH.Stub).Methods("POST")
	secureApi.HandleFunc("/tools/stub/import", importH.Stub).Methods("POST")
	secureApi.HandleFunc("/tools/stub/export", exportH.Stub).Methods("POST")
	secureApi.HandleFunc("/tools/stub/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/reference/rd10249/table", tableH.Show).Methods("GET")
	secureApi.HandleFunc("/reference/rd10249/stress", tableH.Stress).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on the environment")
	}

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	db, err := repo.Open(connStr)
	if err != nil {
		log.Fatalf("Opening database: %v", err)
	}
	defer db.Close()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":443"
	}

	router := mux.NewRouter()
	HandleList(router, db, rd10249.Steel12Kh1MF())
	handler := CORS(router)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	log.Printf("Starting server on %s", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
