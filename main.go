package main

import (
	"log"
	"net/http"
	"os"

	"github.com/artesania/artesania-api/app/cmd"
	"github.com/artesania/artesania-api/app/configs"
	"github.com/artesania/artesania-api/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()
	if env.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty! Please check your .env file.")
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("database connected")

	router := routes.NewRouter(db, env)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
