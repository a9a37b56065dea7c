package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/saturnines/gqlclient/pkg/client"
	"github.com/saturnines/gqlclient/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not loaded:", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.NewDefaultClientLoader().Load("demo/invoice/client.yaml")
	if err != nil {
		log.Fatal(err)
	}

	doc, err := config.NewDocumentLoader(&config.EnvExpander{}).Load("demo/invoice/invoice.yaml")
	if err != nil {
		log.Fatal(err)
	}

	c, err := client.FromConfig(cfg, client.WithLogger(logger))
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}

	text, err := c.DictToQuery(doc.Fields, doc.Args)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(text)

	data, err := c.Execute(context.Background(), doc.Fields, doc.Args, client.SuppressErrors())
	if err != nil {
		log.Fatal("Query failed:", err)
	}
	if data == nil {
		fmt.Println("No result (endpoint unreachable?)")
		return
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(data)
}
