package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	envFile := flag.String("env", ".env", "Optional env file with S3 settings")
	flag.Parse()

	// A missing env file is fine; the process environment still applies
	_ = godotenv.Load(*envFile)

	var uploader *output.Uploader
	if s3Config := output.S3ConfigFromEnv(); s3Config.Enabled() {
		var err error
		uploader, err = output.NewUploader(s3Config)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
		log.Printf("Uploads enabled to bucket %s", s3Config.Bucket)
	}

	webServer := server.NewServer(*port, uploader)

	log.Printf("Weekend Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
