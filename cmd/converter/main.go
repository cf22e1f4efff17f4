package main

import (
	"flag"
	"log"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matst80/humidor/pkg/messaging"
	"github.com/matst80/humidor/pkg/storage"
)

var input = flag.String("input", "data/catalog.csv", "semicolon separated catalog export")
var output = flag.String("output", "catalog.json", "catalog file name, .gz for gzip")
var folder = flag.String("folder", "data", "catalog folder")
var site = "lounge"
var rabbitUrl = os.Getenv("RABBIT_URL")

func init() {
	if s, ok := os.LookupEnv("SITE"); ok {
		site = s
	}
}

func announce(file string) error {
	conn, err := amqp.Dial(rabbitUrl)
	if err != nil {
		return err
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	if err = messaging.DefineTopic(ch, site, messaging.CatalogChanged); err != nil {
		return err
	}
	return messaging.SendChange(conn, site, messaging.CatalogChanged, messaging.CatalogChange{File: file})
}

func main() {
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("Unable to read input file %s: %v", *input, err)
	}
	defer f.Close()

	items, err := storage.ReadCatalogCsv(f)
	if err != nil {
		log.Fatalf("Unable to parse %s: %v", *input, err)
	}

	s := storage.NewDiskStorage(*folder)
	if err = s.SaveCatalog(items, *output); err != nil {
		log.Fatalf("Could not save catalog: %v", err)
	}
	log.Printf("Saved %d items to %s", len(items), *output)

	if rabbitUrl != "" {
		if err = announce(*output); err != nil {
			log.Fatalf("Could not announce catalog change: %v", err)
		}
		log.Printf("Announced catalog change on %s", site)
	}
}
