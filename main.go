package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mealdash/config"
	httpapi "mealdash/internal/api/http"
	"mealdash/internal/service"
	"mealdash/internal/storage"
	"mealdash/internal/worker"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	orderWriter := config.NewKafkaWriter("orders")
	defer orderWriter.Close()

	fulfillmentReader := config.NewKafkaReader("fulfillment", "mealdash")
	defer fulfillmentReader.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	frequentItems := storage.NewFrequentItemsCache(rdb)
	publisher := storage.NewKafkaPublisher(orderWriter)
	paymentProvider := storage.NewPaymentClient(config.PaymentAPIURL(), config.PaymentAPIKey(), nil)
	authClient := storage.NewAuthClient(config.AuthServiceURL(), nil)
	qr := &service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}

	catalogService := service.NewCatalogService(repo)
	cartService := service.NewCartService(repo, repo)
	orderService := service.NewOrderService(repo, repo, publisher, qr)
	paymentService := service.NewPaymentService(repo, paymentProvider, publisher)
	profileService := service.NewProfileService(repo, repo, frequentItems)

	consumer := worker.NewFulfillmentConsumer(fulfillmentReader, orderService)
	go consumer.Start(context.Background())

	sweep := worker.NewPaymentSweep(repo, paymentProvider)
	go sweep.Start(context.Background())

	handler := httpapi.NewHandler(catalogService, cartService, orderService, paymentService, profileService)
	router := httpapi.NewRouter(handler, authClient)

	httpapi.StartServer(":"+config.Port(), router)
}
